// Package servers holds the HTTP contract described by openapi.yaml: the
// request and response types, the ServerInterface the adapter implements, and
// echo route registration with parameter binding.
package servers

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for CreatorType.
const (
	CreatorTypeCUSTOMER CreatorType = "CUSTOMER"
	CreatorTypeOPERATOR CreatorType = "OPERATOR"
)

// Defines values for Payer.
const (
	PayerRECIPIENT Payer = "RECIPIENT"
	PayerSENDER    Payer = "SENDER"
)

// Defines values for PickupMethod.
const (
	PickupMethodDOORPICKUP    PickupMethod = "DOOR_PICKUP"
	PickupMethodOFFICEDROPOFF PickupMethod = "OFFICE_DROP_OFF"
)

// Defines values for PromotionKind.
const (
	PromotionKindFIXED      PromotionKind = "FIXED"
	PromotionKindPERCENTAGE PromotionKind = "PERCENTAGE"
)

// CostBreakdown defines model for CostBreakdown.
type CostBreakdown struct {
	AppliedPromotionId       *string `json:"appliedPromotionId,omitempty"`
	BaseShippingFee          int64   `json:"baseShippingFee"`
	CollectionSurcharge      int64   `json:"collectionSurcharge"`
	DiscountAmount           int64   `json:"discountAmount"`
	InsuranceSurcharge       int64   `json:"insuranceSurcharge"`
	ServiceFeeBeforeDiscount int64   `json:"serviceFeeBeforeDiscount"`
	Tax                      int64   `json:"tax"`
	TotalPayable             int64   `json:"totalPayable"`
}

// CreatorType defines model for CreatorType.
type CreatorType string

// Editability defines model for Editability.
type Editability struct {
	CreatorType         CreatorType        `json:"creatorType"`
	Fields              map[string]bool    `json:"fields"`
	IsCancellable       bool               `json:"isCancellable"`
	IsEditable          bool               `json:"isEditable"`
	IsEditableByCreator bool               `json:"isEditableByCreator"`
	OrderId             openapi_types.UUID `json:"orderId"`
	Status              string             `json:"status"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CollectOnDeliveryAmount *int64       `json:"collectOnDeliveryAmount,omitempty"`
	CreatorType             CreatorType  `json:"creatorType"`
	DeclaredGoodsValue      *int64       `json:"declaredGoodsValue,omitempty"`
	DestinationRegionCode   string       `json:"destinationRegionCode"`
	OriginRegionCode        string       `json:"originRegionCode"`
	Payer                   Payer        `json:"payer"`
	PickupMethod            PickupMethod `json:"pickupMethod"`
	Products                []string     `json:"products"`
	PromotionId             *string      `json:"promotionId,omitempty"`
	ServiceTierId           string       `json:"serviceTierId"`
	WeightGrams             int64        `json:"weightGrams"`
}

// OrderChanges Omitted fields stay unchanged. An empty promotionId clears the promotion.
type OrderChanges struct {
	CollectOnDeliveryAmount *int64        `json:"collectOnDeliveryAmount,omitempty"`
	DeclaredGoodsValue      *int64        `json:"declaredGoodsValue,omitempty"`
	Payer                   *Payer        `json:"payer,omitempty"`
	PickupMethod            *PickupMethod `json:"pickupMethod,omitempty"`
	Products                *[]string     `json:"products,omitempty"`
	PromotionId             *string       `json:"promotionId,omitempty"`
	ServiceTierId           *string       `json:"serviceTierId,omitempty"`
	WeightGrams             *int64        `json:"weightGrams,omitempty"`
}

// OrderCreated defines model for OrderCreated.
type OrderCreated struct {
	Id    openapi_types.UUID `json:"id"`
	Quote Quote              `json:"quote"`
}

// Payer defines model for Payer.
type Payer string

// PickupMethod defines model for PickupMethod.
type PickupMethod string

// Promotion defines model for Promotion.
type Promotion struct {
	Discount            int64         `json:"discount"`
	Id                  string        `json:"id"`
	Kind                PromotionKind `json:"kind"`
	MaxDiscount         *int64        `json:"maxDiscount,omitempty"`
	MinQualifyingAmount int64         `json:"minQualifyingAmount"`

	// ServiceTiers Tiers the promotion is restricted to. Absent means every tier.
	ServiceTiers *[]string `json:"serviceTiers,omitempty"`
	Value        int64     `json:"value"`
}

// PromotionKind defines model for PromotionKind.
type PromotionKind string

// Quote defines model for Quote.
type Quote struct {
	Breakdown          CostBreakdown `json:"breakdown"`
	EvictedPromotionId *string       `json:"evictedPromotionId,omitempty"`
	Notice             *string       `json:"notice,omitempty"`
}

// QuoteRequest defines model for QuoteRequest.
type QuoteRequest struct {
	CollectOnDeliveryAmount *int64  `json:"collectOnDeliveryAmount,omitempty"`
	DeclaredGoodsValue      *int64  `json:"declaredGoodsValue,omitempty"`
	DestinationRegionCode   *string `json:"destinationRegionCode,omitempty"`
	OriginRegionCode        *string `json:"originRegionCode,omitempty"`
	PromotionId             *string `json:"promotionId,omitempty"`
	ServiceTierId           *string `json:"serviceTierId,omitempty"`
	WeightGrams             *int64  `json:"weightGrams,omitempty"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status string `json:"status"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ListPromotionsParams defines parameters for ListPromotions.
type ListPromotionsParams struct {
	ServiceTierId *string `form:"serviceTierId,omitempty" json:"serviceTierId,omitempty"`
	ServiceFee    *int64  `form:"serviceFee,omitempty" json:"serviceFee,omitempty"`
}

// QuoteOrderCostJSONRequestBody defines body for QuoteOrderCost for application/json ContentType.
type QuoteOrderCostJSONRequestBody = QuoteRequest

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// ChangeOrderJSONRequestBody defines body for ChangeOrder for application/json ContentType.
type ChangeOrderJSONRequestBody = OrderChanges

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus for application/json ContentType.
type ChangeOrderStatusJSONRequestBody = StatusChange

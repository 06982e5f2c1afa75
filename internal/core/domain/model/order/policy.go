package order

// The mutability policy is a pure lookup. Every (field, status, creator)
// combination not listed below is read-only.

// editWindow lists, per creator type, the statuses in which a field may change.
type editWindow map[CreatorType]statusSet

var (
	preCommitment = setOf(Draft, Pending)
	untilConfirm  = setOf(Draft, Pending, Confirmed)
	untilPickup   = setOf(Draft, Pending, Confirmed, ReadyForPickup)
)

// fieldEditWindows is the full policy matrix.
//
//   - Customers may change anything while the order is Draft or Pending, and
//     nothing once the warehouse has committed to it.
//   - Operators may correct weight, service tier and declared value up to
//     ReadyForPickup, after the parcel has been measured.
//   - Operators may change settlement terms (COD amount, payer, pickup method)
//     up to Confirmed.
//   - The product list is frozen after Pending for everyone.
//   - Nothing changes from PickingUp onwards.
var fieldEditWindows = map[FieldKey]editWindow{
	FieldWeight: {
		Customer: preCommitment,
		Operator: untilPickup,
	},
	FieldServiceTier: {
		Customer: preCommitment,
		Operator: untilPickup,
	},
	FieldDeclaredGoodsValue: {
		Customer: preCommitment,
		Operator: untilPickup,
	},
	FieldCollectOnDeliveryAmount: {
		Customer: preCommitment,
		Operator: untilConfirm,
	},
	FieldPayer: {
		Customer: preCommitment,
		Operator: untilConfirm,
	},
	FieldPickupMethod: {
		Customer: preCommitment,
		Operator: untilConfirm,
	},
	FieldProductList: {
		Customer: preCommitment,
		Operator: preCommitment,
	},
}

// orderEditWindows is the creator-aware order-level gate. It is the union of the
// field windows above for each creator.
var orderEditWindows = editWindow{
	Customer: preCommitment,
	Operator: untilPickup,
}

// IsFieldEditable reports whether field may still change on an order in status
// created by creator. Unknown inputs are never editable.
func IsFieldEditable(field FieldKey, status Status, creator CreatorType) bool {
	return fieldEditWindows[field][creator].has(status)
}

// IsOrderEditable is the coarse edit gate used for the customer-facing edit
// action: true only while the order is Draft or Pending.
func IsOrderEditable(status Status) bool {
	return preCommitment.has(status)
}

// IsOrderEditableBy is the order-level edit gate for a given creator type. It is
// true exactly when at least one field is editable, and equals IsOrderEditable
// for customer-created orders.
func IsOrderEditableBy(status Status, creator CreatorType) bool {
	return orderEditWindows[creator].has(status)
}

// IsOrderCancellable reports whether the order may still be cancelled: any
// state before PickingUp.
func IsOrderCancellable(status Status) bool {
	return untilPickup.has(status)
}

// EditableFields returns the fields currently editable, in AllFields order.
func EditableFields(status Status, creator CreatorType) []FieldKey {
	fields := make([]FieldKey, 0, len(fieldEditWindows))
	for _, f := range AllFields() {
		if IsFieldEditable(f, status, creator) {
			fields = append(fields, f)
		}
	}
	return fields
}

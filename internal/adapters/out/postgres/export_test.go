package postgres

// TrackedAggregates exposes the aggregates a unit of work recorded.
func TrackedAggregates(uow *GormUnitOfWork) []trackedAggregate {
	result := make([]trackedAggregate, len(uow.trackedAggregates))
	copy(result, uow.trackedAggregates)
	return result
}

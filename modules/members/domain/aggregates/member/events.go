package member

type CreatedEvent struct {
	Member Member
}

type UpdatedEvent struct {
	Member Member
}

type DeletedEvent struct {
	ID string
}

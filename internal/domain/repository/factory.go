package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Stores() StoreRepository
	Ratings() RatingRepository
	Activity() ActivityRepository
}

package errs

// Sentinel errors shared by the command and query sides.
var (
	// Not found
	ErrReservationNotFound = New("reservation not found")
	ErrRoomNotFound        = New("room not found")
	ErrUserNotFound        = New("user not found")

	// Conflicts
	ErrReservationConflict = New("reservation dates overlap an existing reservation")
	ErrRoomNumberTaken     = New("room number already exists")
	ErrRoomHasReservations = New("room has active reservations")
	ErrUsernameTaken       = New("username already exists")

	// Validation
	ErrInvalidArgument = New("invalid argument")

	// Authorization
	ErrReservationNotOwned = New("reservation not owned by user")
	ErrInvalidCredentials  = New("invalid username or password")

	// Store
	ErrDatabaseOperationFailed = New("database operation failed")
)

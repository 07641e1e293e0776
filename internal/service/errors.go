package service

// NotFoundError reports a missing enrollment or hotel.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func notFoundError() error {
	return &NotFoundError{Message: "No result for this search!"}
}

// RequestError reports a request that is well formed but not allowed. Status
// is informational; the transport layer decides the response code.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func requestError(status int, message string) error {
	return &RequestError{Status: status, Message: message}
}

const msgHotelNotIncluded = "It must be at least one paid ticket and should includes hotel"

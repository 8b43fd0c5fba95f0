package flagkit

// StatusClass buckets an HTTP status code.
type StatusClass uint8

const (
	StatusSuccess StatusClass = 1 << iota
	StatusClientError
	StatusServerError
	StatusInformational
	StatusRedirect
)

// CategorizeStatus maps code to its class, or 0 when it is outside 100-599.
func CategorizeStatus(code int) StatusClass {
	switch {
	case code >= 200 && code <= 299:
		return StatusSuccess
	case code >= 400 && code <= 499:
		return StatusClientError
	case code >= 500 && code <= 599:
		return StatusServerError
	case code >= 100 && code <= 199:
		return StatusInformational
	case code >= 300 && code <= 399:
		return StatusRedirect
	}
	return 0
}

func (s StatusClass) String() string {
	switch {
	case s&StatusSuccess != 0:
		return "Success"
	case s&StatusClientError != 0:
		return "Client error"
	case s&StatusServerError != 0:
		return "Server error"
	case s&StatusInformational != 0:
		return "Informational"
	case s&StatusRedirect != 0:
		return "Redirect"
	}
	return "Unknown error"
}

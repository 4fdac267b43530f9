package dto

// Response is the JSON envelope every endpoint answers with.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Count   *int              `json:"count,omitempty"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK builds a success envelope around data.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKList builds a success envelope with an item count.
func OKList(data any, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

// Fail builds an error envelope.
func Fail(message string) Response {
	return Response{Success: false, Error: message}
}

package serverutils

// Response is the standard success envelope returned by all controllers.
type Response[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func CreatedResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Code:    201,
		Message: message,
		Data:    data,
	}
}

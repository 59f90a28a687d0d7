package errors

// Response is the wire shape produced for failed requests by the error
// middleware. Success responses are built by the response package.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

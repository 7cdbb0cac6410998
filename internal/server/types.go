package server

// ConvertResponse represents the standardized JSON response for a conversion
// request.
type ConvertResponse struct {
	// Input is the digit string that was converted.
	Input string `json:"input"`
	// Result is the converted digit string. It is omitted if an error occurred.
	Result string `json:"result,omitempty"`
	// SrcBase is the numeral base of the source table.
	SrcBase int `json:"src_base"`
	// DstBase is the numeral base of the destination table.
	DstBase int `json:"dst_base"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
	// Error contains the error message if the conversion failed.
	Error string `json:"error,omitempty"`
}

// BatchRequest is the JSON body accepted by the batch conversion endpoint.
type BatchRequest struct {
	// Inputs are the digit strings to convert, all over the same tables.
	Inputs []string `json:"inputs"`
	// Src is the source table or preset name; defaults to the server's
	// configured source table when empty.
	Src string `json:"src,omitempty"`
	// Dst is the destination table or preset name; defaults to the server's
	// configured destination table when empty.
	Dst string `json:"dst,omitempty"`
}

// BatchResponse represents the JSON response for a batch conversion.
type BatchResponse struct {
	// Results are the converted strings, index-aligned with the request inputs.
	Results []string `json:"results,omitempty"`
	// Count is the number of inputs processed.
	Count int `json:"count"`
	// Duration is the formatted execution time for the whole batch.
	Duration string `json:"duration"`
	// Error contains the error message if the batch failed.
	Error string `json:"error,omitempty"`
}

// TableInfo describes one preset table in the tables listing endpoint.
type TableInfo struct {
	// Name is the preset name accepted by the convert endpoints.
	Name string `json:"name"`
	// Table is the digit table itself.
	Table string `json:"table"`
	// Base is the numeral base the table defines.
	Base int `json:"base"`
}

// ErrorResponse represents the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}

// ConvertParseError represents a parameter parsing error with HTTP status.
type ConvertParseError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e ConvertParseError) Error() string {
	return e.Message
}

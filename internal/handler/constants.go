package handler

// TimeFormat is the time format for API responses: RFC3339 with milliseconds.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// ServerErrorMessage is the plain-text body of every 500 response.
const ServerErrorMessage = "Server error"

// InvalidBodyMessage is reported when the request body is not a JSON object.
const InvalidBodyMessage = "Invalid request body"

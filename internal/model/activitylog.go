package model

// LogEntry as returned by /api/ActivityLog/GetActivityLogData.
type LogEntry struct {
	LogID        int    `json:"logID"`
	UserID       int    `json:"userID"`
	Action       string `json:"action"`
	Endpoint     string `json:"endpoint"`
	Method       string `json:"method"`
	RequestData  string `json:"requestData"`
	ResponseData string `json:"responseData"`
	StatusCode   string `json:"statusCode"`
	Timestamp    string `json:"timestamp"`
}

// TruncateLimit is the character budget for long text fields in table
// display. Exports always use the untruncated value.
const TruncateLimit = 20

// Truncate shortens s to TruncateLimit characters with an ellipsis. Only
// the display path uses this. Counting runes keeps a multibyte character
// at the cut point intact.
func Truncate(s string) string {
	r := []rune(s)
	if len(r) > TruncateLimit {
		return string(r[:TruncateLimit]) + "..."
	}
	return s
}

// DisplayRow returns a copy with the long text fields truncated for table
// rendering.
func (e LogEntry) DisplayRow() LogEntry {
	e.Endpoint = Truncate(e.Endpoint)
	e.RequestData = Truncate(e.RequestData)
	e.ResponseData = Truncate(e.ResponseData)
	return e
}

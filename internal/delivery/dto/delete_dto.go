package dto

// DeleteResponse reports a committed delete and every row it removed, in the
// order the rows were removed.
type DeleteResponse struct {
	Entity  string         `json:"entity"`
	Key     string         `json:"key"`
	Removed []RemovedCount `json:"removed"`
}

type RemovedCount struct {
	Entity string `json:"entity"`
	Rows   int64  `json:"rows"`
}

package model

type Business struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Campaign struct {
	ID            int64     `json:"id"`
	Domain        string    `json:"domain,omitempty"`
	ClientID      int64     `json:"clientId,omitempty"`
	Business      *Business `json:"business,omitempty"`
	PlacementType string    `json:"placementType,omitempty"`
}

type Region struct {
	ID     int64   `json:"id,omitempty"`
	Name   string  `json:"name,omitempty"`
	Type   string  `json:"type,omitempty"`
	Parent *Region `json:"parent,omitempty"`
}

package dto

// BranchResponse salida de una filial.
type BranchResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// BranchListResponse lista de filiales.
type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
}

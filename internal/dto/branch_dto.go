package dto

type CreateBranchRequest struct {
	Name     string  `json:"name" validate:"required"`
	Location string  `json:"location" validate:"required"`
	Manager  *string `json:"manager_id" validate:"omitempty,uuid"`
}

type BranchResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	ManagerID *string `json:"manager_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

package dto

type RoleDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type RoleListDTO struct {
	Data  []*RoleDTO `json:"data"`
	Count int64      `json:"count"`
}

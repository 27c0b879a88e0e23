package model

type Role struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(50);uniqueIndex:idx_role_name;not null" json:"name"`
	Description *string `gorm:"type:varchar(255)" json:"description"`

	Users []User `gorm:"foreignKey:RoleID;references:ID"`
}

func (Role) TableName() string {
	return "roles"
}

package consts

const (
	PostStatusPublished = "published"
	PostStatusDraft     = "draft"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
	RoleAuthor    = "author"
)

const (
	GenderFemale = "female"
	GenderMale   = "male"
	GenderOther  = "other"
)

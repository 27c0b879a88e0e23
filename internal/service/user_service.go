package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/mailer"
	"Inkstone/internal/pkg/security"
	"Inkstone/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
)

type UserService struct {
	userRepo repository.UserRepo
	roleRepo repository.RoleRepo
}

func NewUserService(userRepo repository.UserRepo, roleRepo repository.RoleRepo) *UserService {
	return &UserService{userRepo: userRepo, roleRepo: roleRepo}
}

func toUserDTO(user *model.User) *dto.UserDTO {
	userDTO := &dto.UserDTO{}
	_ = copier.Copy(userDTO, user)
	userDTO.Role = dto.RoleDTO{
		ID:          user.Role.ID,
		Name:        user.Role.Name,
		Description: user.Role.Description,
	}
	return userDTO
}

// CreateUser registers an open signup account with the default role and
// sends the welcome mail in the background.
func (s *UserService) CreateUser(ctx context.Context, createDTO *dto.CreateUserDTO) (*dto.UserDTO, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, createDTO.Email)
	if err != nil {
		log.ErrorContext(ctx, "create user query failed", "err", err)
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	role, err := s.roleRepo.GetRoleByName(ctx, consts.RoleUser)
	if err != nil {
		log.ErrorContext(ctx, "default role query failed", "err", err)
		return nil, UnExpectedError
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	hashed, err := security.HashPassword(createDTO.Password)
	if err != nil {
		log.ErrorContext(ctx, "hash password failed", "err", err)
		return nil, UnExpectedError
	}

	gender := createDTO.Gender
	if gender == "" {
		gender = consts.GenderOther
	}

	user := &model.User{
		Email:          createDTO.Email,
		Nickname:       createDTO.Nickname,
		HashedPassword: hashed,
		IsActive:       true,
		Gender:         gender,
		FirstName:      createDTO.FirstName,
		LastName:       createDTO.LastName,
		City:           createDTO.City,
		State:          createDTO.State,
		Country:        createDTO.Country,
		Address:        createDTO.Address,
		Phone:          createDTO.Phone,
		RoleID:         role.ID,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		log.ErrorContext(ctx, "create user failed", "err", err)
		return nil, UnExpectedError
	}
	user.Role = *role

	mailer.SendWelcomeAsync(user.Email, user.Nickname)
	return toUserDTO(user), nil
}

// GetSelf returns the caller's own profile.
func (s *UserService) GetSelf(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "get self query failed", "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

// GetUser reads any profile; non superusers may only read their own.
func (s *UserService) GetUser(ctx context.Context, actorID uint64, actorIsSuper bool, targetID uint64) (*dto.UserDTO, error) {
	if actorID != targetID && !actorIsSuper {
		return nil, ErrNotSuperuser
	}

	user, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		log.ErrorContext(ctx, "get user query failed", "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *UserService) ListUsers(ctx context.Context, skip, limit int) (*dto.UserListDTO, error) {
	users, count, err := s.userRepo.ListUsers(ctx, skip, limit)
	if err != nil {
		log.ErrorContext(ctx, "list users failed", "err", err)
		return nil, UnExpectedError
	}

	data := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		data = append(data, toUserDTO(user))
	}
	return &dto.UserListDTO{Data: data, Count: count}, nil
}

// UpdateSelf applies the non-nil profile fields to the caller's account.
func (s *UserService) UpdateSelf(ctx context.Context, userID uint64, updateDTO *dto.UpdateSelfDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "update self query failed", "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := copier.CopyWithOption(user, updateDTO, copier.Option{IgnoreEmpty: true}); err != nil {
		log.ErrorContext(ctx, "copy profile fields failed", "err", err)
		return nil, UnExpectedError
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		log.ErrorContext(ctx, "update self failed", "err", err)
		return nil, UnExpectedError
	}
	return toUserDTO(user), nil
}

// AdminUpdateUser lets a superuser edit any account, including role and
// activation flags.
func (s *UserService) AdminUpdateUser(ctx context.Context, targetID uint64, updateDTO *dto.AdminUpdateUserDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		log.ErrorContext(ctx, "admin update query failed", "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if updateDTO.Email != nil && *updateDTO.Email != user.Email {
		other, err := s.userRepo.GetUserByEmail(ctx, *updateDTO.Email)
		if err != nil {
			log.ErrorContext(ctx, "admin update email query failed", "err", err)
			return nil, UnExpectedError
		}
		if other != nil {
			return nil, ErrEmailExists
		}
	}

	if err := copier.CopyWithOption(user, updateDTO, copier.Option{IgnoreEmpty: true}); err != nil {
		log.ErrorContext(ctx, "copy account fields failed", "err", err)
		return nil, UnExpectedError
	}
	if updateDTO.IsActive != nil {
		user.IsActive = *updateDTO.IsActive
	}
	if updateDTO.IsSuperuser != nil {
		user.IsSuperuser = *updateDTO.IsSuperuser
	}

	if updateDTO.RoleID != nil {
		user.RoleID = *updateDTO.RoleID
		user.Role = model.Role{}
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		log.ErrorContext(ctx, "admin update failed", "err", err)
		return nil, UnExpectedError
	}

	user, err = s.userRepo.GetUserByID(ctx, targetID)
	if err != nil || user == nil {
		log.ErrorContext(ctx, "admin update reload failed", "err", err)
		return nil, UnExpectedError
	}
	return toUserDTO(user), nil
}

// ChangePassword verifies the current password before storing the new one.
func (s *UserService) ChangePassword(ctx context.Context, userID uint64, changeDTO *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "change password query failed", "err", err)
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !security.CheckPasswordHash(changeDTO.CurrentPassword, user.HashedPassword) {
		return ErrIncorrectPassword
	}
	if changeDTO.NewPassword == changeDTO.CurrentPassword {
		return ErrPasswordUnchanged
	}

	hashed, err := security.HashPassword(changeDTO.NewPassword)
	if err != nil {
		log.ErrorContext(ctx, "hash password failed", "err", err)
		return UnExpectedError
	}
	user.HashedPassword = hashed

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		log.ErrorContext(ctx, "change password update failed", "err", err)
		return UnExpectedError
	}
	return nil
}

// DeleteSelf removes the caller's own account and all of its posts.
// Superusers may not delete themselves.
func (s *UserService) DeleteSelf(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "delete self query failed", "err", err)
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsSuperuser {
		return ErrForbiddenSelfDelete
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		log.ErrorContext(ctx, "delete self failed", "err", err)
		return UnExpectedError
	}
	return nil
}

// AdminDeleteUser removes any account except the superuser's own.
func (s *UserService) AdminDeleteUser(ctx context.Context, actorID, targetID uint64) error {
	user, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		log.ErrorContext(ctx, "admin delete query failed", "err", err)
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}
	if targetID == actorID {
		return ErrForbiddenSelfDelete
	}

	if err := s.userRepo.DeleteUser(ctx, targetID); err != nil {
		log.ErrorContext(ctx, "admin delete failed", "err", err)
		return UnExpectedError
	}
	return nil
}

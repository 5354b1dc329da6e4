package authenticating

import (
	"errors"
	"testing"

	"github.com/renezit0/goalflow-api/infrastructure/repository/mocks"
	"github.com/renezit0/goalflow-api/internal/config"
	"github.com/renezit0/goalflow-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func intPtr(i int) *int {
	return &i
}

func TestService_LoginUser(t *testing.T) {
	passwordHash := func(t *testing.T) string { return hashPassword(t, "Senha@123") }

	tests := []struct {
		name     string
		login    string
		password string
		setup    func(t *testing.T, userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Login e senha vazios retornam erro de dados obrigatórios",
			login:    "",
			password: "",
			setup:    func(t *testing.T, userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name:     "Login é normalizado antes da consulta",
			login:    "  Admin ",
			password: "Senha@123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByLogin("admin").Return(&domain.User{
					ID:           1,
					Login:        "admin",
					PasswordHash: passwordHash(t),
					Active:       true,
					RoleID:       1,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "Usuário inexistente retorna erro de usuário não encontrado",
			login:    "fantasma",
			password: "Senha@123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByLogin("fantasma").Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:     "Usuário desativado não consegue entrar",
			login:    "inativo",
			password: "Senha@123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByLogin("inativo").Return(&domain.User{
					ID:           2,
					Login:        "inativo",
					PasswordHash: passwordHash(t),
					Active:       false,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "Senha incorreta retorna erro de credenciais",
			login:    "admin",
			password: "senha-errada",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByLogin("admin").Return(&domain.User{
					ID:           1,
					Login:        "admin",
					PasswordHash: passwordHash(t),
					Active:       true,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "Erro do banco é envolvido em AuthError",
			login:    "admin",
			password: "Senha@123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByLogin("admin").Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)

				var authErr *AuthError
				assert.ErrorAs(t, err, &authErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(t, userRepo)

			service := NewService(userRepo, testConfig())
			token, err := service.LoginUser(tt.login, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_LoginEValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByLogin("matriz").Return(&domain.User{
		ID:           3,
		Name:         "Gerente Matriz",
		Login:        "matriz",
		PasswordHash: hashPassword(t, "Senha@123"),
		Active:       true,
		RoleID:       3,
		StoreID:      intPtr(10),
	}, nil)

	service := NewService(userRepo, testConfig())

	token, err := service.LoginUser("matriz", "Senha@123")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "matriz", claims.UserLogin)
	assert.Equal(t, 3, claims.UserRoleID)
	if assert.NotNil(t, claims.UserStoreID) {
		assert.Equal(t, 10, *claims.UserStoreID)
	}
}

func TestService_ValidateToken_TokenInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	_, err := service.ValidateToken("token-que-nao-e-jwt")
	assert.Error(t, err)
}

func TestService_ChangePassword(t *testing.T) {
	tests := []struct {
		name            string
		currentPassword string
		newPassword     string
		setup           func(t *testing.T, userRepo *mocks.MockUserRepository)
		validate        func(t *testing.T, err error)
	}{
		{
			name:            "Troca de senha com sucesso",
			currentPassword: "Senha@123",
			newPassword:     "NovaSenha456",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(3).Return(&domain.User{
					ID:           3,
					PasswordHash: hashPassword(t, "Senha@123"),
					Active:       true,
				}, nil)
				userRepo.EXPECT().UpdatePassword(3, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:            "Senha atual incorreta impede a troca",
			currentPassword: "errada",
			newPassword:     "NovaSenha456",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(3).Return(&domain.User{
					ID:           3,
					PasswordHash: hashPassword(t, "Senha@123"),
					Active:       true,
				}, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrPasswordMismatch)
			},
		},
		{
			name:            "Nova senha igual à atual é rejeitada",
			currentPassword: "Senha@123",
			newPassword:     "Senha@123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(3).Return(&domain.User{
					ID:           3,
					PasswordHash: hashPassword(t, "Senha@123"),
					Active:       true,
				}, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrSamePassword)
			},
		},
		{
			name:            "Nova senha fraca é rejeitada",
			currentPassword: "Senha@123",
			newPassword:     "fraca",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID(3).Return(&domain.User{
					ID:           3,
					PasswordHash: hashPassword(t, "Senha@123"),
					Active:       true,
				}, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(t, userRepo)

			service := NewService(userRepo, testConfig())
			err := service.ChangePassword(3, tt.currentPassword, tt.newPassword)
			tt.validate(t, err)
		})
	}
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	tests := []struct {
		password string
		valid    bool
	}{
		{"Senha123", true},
		{"NovaSenha456", true},
		{"curta1A", false},
		{"somenteminusculas1", false},
		{"SOMENTEMAIUSCULAS1", false},
		{"SemNumeros", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByID(3).Return(&domain.User{
		ID:           3,
		Name:         "Gerente Matriz",
		PasswordHash: "hash-que-nao-pode-vazar",
	}, nil)

	service := NewService(userRepo, testConfig())

	user, err := service.GetUserProfile(3)
	assert.NoError(t, err)
	assert.Equal(t, "Gerente Matriz", user.Name)
	assert.Empty(t, user.PasswordHash, "o hash de senha nunca sai do serviço")
}

package api

import (
	"bytes"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/logger"
	"github.com/fsdevblog/groph-eats/internal/service"
	"github.com/fsdevblog/groph-eats/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-eats/internal/transport/api/testutils"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *mocks.MockUserServicer
	jwtSecret       []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *AuthHandlerTestSuite) TestRegister() {
	validArgs := service.RegisterUserArgs{
		Username:     "owner",
		Password:     "password1",
		MerchantName: "Pizza Roma",
	}
	referralArgs := service.RegisterUserArgs{
		Username:     "owner2",
		Password:     "password1",
		MerchantName: "Sushi Bar",
		ReferralCode: "unknown-code",
	}
	duplicateArgs := service.RegisterUserArgs{
		Username:     "duplicate",
		Password:     "password1",
		MerchantName: "Pizza Roma",
	}
	// Ровно 30 символов, верхняя граница логина. Колонка users.username должна
	// вмещать всё, что пропускает биндинг.
	longLogin := "abcdefghijklmnopqrstuvwxyz0123"
	longLoginArgs := service.RegisterUserArgs{
		Username:     longLogin,
		Password:     "password1",
		MerchantName: "Pizza Roma",
	}

	s.mockUserService.EXPECT().
		Register(gomock.Any(), validArgs).
		Return(&domain.User{ID: 1}, "jwt-token", nil)
	s.mockUserService.EXPECT().
		Register(gomock.Any(), referralArgs).
		Return(nil, "", domain.ErrRecordNotFound)
	s.mockUserService.EXPECT().
		Register(gomock.Any(), duplicateArgs).
		Return(nil, "", domain.ErrOwnerConflict)
	s.mockUserService.EXPECT().
		Register(gomock.Any(), longLoginArgs).
		Return(&domain.User{ID: 2}, "jwt-token", nil)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
		wantAuth   bool
	}{
		{
			name:       "ok",
			payload:    `{"login":"owner","password":"password1","merchantName":"Pizza Roma"}`,
			wantStatus: http.StatusOK,
			wantAuth:   true,
		}, {
			name:       "unknown referral code",
			payload:    `{"login":"owner2","password":"password1","merchantName":"Sushi Bar","referralCode":"unknown-code"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "duplicate login",
			payload:    `{"login":"duplicate","password":"password1","merchantName":"Pizza Roma"}`,
			wantStatus: http.StatusConflict,
		}, {
			name:       "login at max length",
			payload:    `{"login":"` + longLogin + `","password":"password1","merchantName":"Pizza Roma"}`,
			wantStatus: http.StatusOK,
			wantAuth:   true,
		}, {
			name:       "short password",
			payload:    `{"login":"owner","password":"123","merchantName":"Pizza Roma"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "missing merchant name",
			payload:    `{"login":"owner","password":"password1"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "broken json",
			payload:    `{"login":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + RegisterRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantAuth {
				s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestRegisterWithExistingToken() {
	token, tokenErr := merchantJWT(1, s.jwtSecret)
	s.Require().NoError(tokenErr)

	// Авторизованный пользователь не может регистрироваться повторно.
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + RegisterRoute,
		Body:   bytes.NewReader([]byte(`{"login":"owner","password":"password1","merchantName":"Pizza Roma"}`)),
	},
		testutils.WithBearerToken(token),
		testutils.WithHeader("Content-Type", "application/json"),
	)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *AuthHandlerTestSuite) TestLogin() {
	user := domain.User{
		ID:        1,
		Username:  "owner",
		Role:      domain.RoleMerchant,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "owner", Password: "password1"}).
		Return(&user, "jwt-token", nil)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "owner", Password: "wrongpass"}).
		Return(nil, "", domain.ErrPasswordMissMatch)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "ghost", Password: "password1"}).
		Return(nil, "", domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
		wantAuth   bool
	}{
		{
			name:       "ok",
			payload:    `{"login":"owner","password":"password1"}`,
			wantStatus: http.StatusOK,
			wantAuth:   true,
		}, {
			name:       "wrong password",
			payload:    `{"login":"owner","password":"wrongpass"}`,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "unknown login",
			payload:    `{"login":"ghost","password":"password1"}`,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "empty payload",
			payload:    `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + LoginRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantAuth {
				s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))
			}
		})
	}
}

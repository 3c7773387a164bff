package authService

import (
	"context"
	"mime/multipart"

	"inkwell/internal/api/auth"
	authRepository "inkwell/internal/api/auth/repository"
	"inkwell/internal/entity"
	"inkwell/pkg/bcrypt"
	"inkwell/pkg/google"
	"inkwell/pkg/redis"
	"inkwell/pkg/s3"
	"inkwell/pkg/utils"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
	GetRepository() authRepository.Repository
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.RegisterRequest) (auth.TokenResponse, error)
	GetByID(c context.Context, id string) (entity.User, error)
	UpdateProfile(c context.Context, userID string, req auth.UpdateProfileRequest) (auth.UserResponse, error)
	UpdateAvatar(c context.Context, userID string, avatarFile *multipart.FileHeader) (auth.UserResponse, error)
}

type AuthDomain interface {
	Login(c context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	Refresh(c context.Context, req auth.RefreshRequest) (auth.TokenResponse, error)
	LoginGoogle(state string) string
	LoginWithGoogleProfile(c context.Context, info auth.UserGoogle) (auth.TokenResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	s3Client       s3.ItfS3
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils

	userDomain UserDomain
	authDomain AuthDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

func (a *authService) GetRepository() authRepository.Repository {
	return a.authRepository
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	redisServer redis.IRedis
	s3Client    s3.ItfS3
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

type authDomainImpl struct {
	log            *logrus.Logger
	repo           authRepository.Repository
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	googleProvider google.ItfGoogle,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) AuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		googleProvider: googleProvider,
		redisServer:    redisServer,
		s3Client:       s3Client,
		bcryptUtils:    bcryptUtils,
		utils:          utils,

		userDomain: &userDomainImpl{log: log, repo: authRepo, redisServer: redisServer, s3Client: s3Client, bcryptUtils: bcryptUtils, utils: utils},
		authDomain: &authDomainImpl{log: log, repo: authRepo, googleProvider: googleProvider, redisServer: redisServer, bcryptUtils: bcryptUtils, utils: utils},
	}
}

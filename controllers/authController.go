package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shophub-store/shophub-api/initializers"
	"github.com/shophub-store/shophub-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgEmailAlreadyExists    = "Email already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "Invalid credentials"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgUserNotFound          = "User not found"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// generateJWT signs a 30-day credential carrying only the user id and expiry.
func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func currentUser(ctx *gin.Context) (models.User, bool) {
	value, exists := ctx.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// Register creates a customer account and returns the signed credential
// together with the public user record.
func Register(ctx *gin.Context) {
	var input models.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Phone:    input.Phone,
		Address:  input.Address,
		Role:     "customer",
	}

	// The unique index on email is the only duplicate guard; a pre-insert
	// lookup would leave a window for two concurrent registrations.
	if result := initializers.DB.Create(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgEmailAlreadyExists)
			return
		}
		log.Println("User creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	ctx.JSON(http.StatusCreated, models.AuthResponse{
		Success: true,
		User:    user.Public(),
		Token:   tokenString,
	})
}

// Login authenticates by email and password.
func Login(ctx *gin.Context) {
	var input models.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var user models.User
	if err := initializers.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, input.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"user":    user.Public(),
		"token":   tokenString,
	})
}

// GetProfile returns the caller's own record.
func GetProfile(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"user":    user.Public(),
	})
}

// UpdateProfile applies a partial update of the caller's contact and address
// fields. Email and role are not editable here.
func UpdateProfile(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUserNotFound)
		return
	}

	var input models.UpdateProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	applyIfSet := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyIfSet(&user.Name, input.Name)
	applyIfSet(&user.Phone, input.Phone)
	applyIfSet(&user.Address, input.Address)
	applyIfSet(&user.HouseNo, input.HouseNo)
	applyIfSet(&user.Street, input.Street)
	applyIfSet(&user.Landmark, input.Landmark)
	applyIfSet(&user.NearBy, input.NearBy)
	applyIfSet(&user.City, input.City)
	applyIfSet(&user.District, input.District)
	applyIfSet(&user.State, input.State)
	applyIfSet(&user.Pincode, input.Pincode)

	if err := initializers.DB.Save(&user).Error; err != nil {
		log.Println("Profile update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"user":    user.Public(),
	})
}

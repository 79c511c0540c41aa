package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// --- Shopper Auth (Simulated) ---
//

// The auth endpoints are thin wrappers over the simulated auth store. A
// validation failure is a 401 with the input untouched on the client side;
// only a cancelled request is treated as an error.

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	ok, err := h.Auth.Login(c.Request.Context(), input.Email, input.Password, input.Remember)
	if err != nil {
		h.authAborted(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in successfully!",
		"user":    h.Auth.CurrentUser(),
	})
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	ok, err := h.Auth.Register(c.Request.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		h.authAborted(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please provide a valid email and a password of at least 6 characters"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully!",
		"user":    h.Auth.CurrentUser(),
	})
}

type SocialLoginInput struct {
	Provider string `json:"provider" binding:"required"`
}

func (h *Handlers) SocialLogin(c *gin.Context) {
	var input SocialLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	ok, err := h.Auth.SocialLogin(c.Request.Context(), input.Provider)
	if err != nil {
		h.authAborted(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown login provider: " + input.Provider})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in with " + input.Provider + " successfully!",
		"user":    h.Auth.CurrentUser(),
	})
}

func (h *Handlers) Logout(c *gin.Context) {
	h.Auth.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handlers) GetCurrentUser(c *gin.Context) {
	user := h.Auth.CurrentUser()
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No user is signed in"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// authAborted maps a cancelled simulated round trip. There is no other
// error source in the auth store.
func (h *Handlers) authAborted(c *gin.Context, err error) {
	if errors.Is(err, c.Request.Context().Err()) {
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Request cancelled"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

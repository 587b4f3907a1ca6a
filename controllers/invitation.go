package controllers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"gestibud-api/config"
	"gestibud-api/models"
	"gestibud-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const invitationTTL = 7 * 24 * time.Hour

// Indirections for tests.
var (
	invitationTokenGenerator = func() string {
		return uuid.NewString()
	}
	invitationSendMail = config.SendMail
	invitationNow      = time.Now
)

// CreateInvitation invites a collaborator into the caller's workspace. The raw
// token travels by email only; only its bcrypt hash is stored.
func CreateInvitation(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := config.DB.Where("email = ? AND delete_at IS NULL", email).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists"})
		return
	}

	// One live invitation per email per workspace.
	var pending models.Invitation
	if err := config.DB.Where("account_id = ? AND email = ? AND accepted_at IS NULL AND expires_at > ?",
		accountID(c), email, invitationNow()).
		First(&pending).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An invitation is already pending for this email"})
		return
	}

	rawToken := invitationTokenGenerator()
	hash, err := bcrypt.GenerateFromPassword([]byte(rawToken), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
		return
	}

	now := invitationNow()
	invitation := models.Invitation{
		AccountID: accountID(c),
		Email:     email,
		Role:      models.RoleCollaborator,
		TokenHash: string(hash),
		ExpiresAt: now.Add(invitationTTL),
		CreateAt:  &now,
		UpdateAt:  &now,
	}
	if err := config.DB.Create(&invitation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation"})
		return
	}

	var inviter models.User
	config.DB.Where("user_id = ?", currentUserID(c)).First(&inviter)

	lang := accountLanguage(c)
	subject := utils.Translate("invitation.subject", lang, nil)
	if err := invitationSendMail([]string{email}, subject, invitationEmailHTML(inviter, email, rawToken, invitation.ExpiresAt, lang)); err != nil {
		log.Printf("invitation email send failed (to=%s): %v", email, err)
		config.DB.Delete(&invitation)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invitation email"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Invitation sent successfully",
		"data":    invitation,
	})
}

// GetInvitations lists the workspace's invitations, most recent first.
func GetInvitations(c *gin.Context) {
	var invitations []models.Invitation
	if err := config.DB.Where("account_id = ?", accountID(c)).
		Order("invitation_id DESC").
		Find(&invitations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invitations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    invitations,
	})
}

// DeleteInvitation revokes a pending invitation.
func DeleteInvitation(c *gin.Context) {
	var invitation models.Invitation
	if err := config.DB.Where("invitation_id = ? AND account_id = ?", c.Param("id"), accountID(c)).
		First(&invitation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		return
	}

	if invitation.IsAccepted() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invitation has already been accepted"})
		return
	}

	if err := config.DB.Delete(&invitation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invitation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Invitation deleted successfully",
	})
}

// AcceptInvitation redeems an invitation token and creates the collaborator
// account inside the inviter's workspace. Public endpoint.
func AcceptInvitation(c *gin.Context) {
	var req struct {
		Email     string `json:"email" binding:"required,email"`
		Token     string `json:"token" binding:"required"`
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Password  string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var invitations []models.Invitation
	if err := config.DB.Where("email = ? AND accepted_at IS NULL", email).
		Find(&invitations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify invitation"})
		return
	}

	var invitation *models.Invitation
	for i := range invitations {
		if bcrypt.CompareHashAndPassword([]byte(invitations[i].TokenHash), []byte(req.Token)) == nil {
			invitation = &invitations[i]
			break
		}
	}
	if invitation == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation token"})
		return
	}

	if invitation.IsExpired(invitationNow()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.Translate("invitation.expired", "fr", nil)})
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ? AND delete_at IS NULL", email).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists"})
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	now := invitationNow()
	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Password:  hashed,
		Role:      invitation.Role,
		AccountID: invitation.AccountID,
		CreateAt:  &now,
		UpdateAt:  &now,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	invitation.AcceptedAt = &now
	invitation.UpdateAt = &now
	if err := config.DB.Save(invitation).Error; err != nil {
		log.Printf("failed to mark invitation %d accepted: %v", invitation.InvitationID, err)
	}

	token, err := generateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Account created but failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Invitation accepted successfully",
		"token":   token,
		"user":    user,
	})
}

// GetCollaborators lists the workspace's members.
func GetCollaborators(c *gin.Context) {
	var users []models.User
	if err := config.DB.Where("account_id = ? AND delete_at IS NULL", accountID(c)).
		Order("user_id ASC").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collaborators"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
	})
}

func invitationEmailHTML(inviter models.User, email, rawToken string, expiresAt time.Time, lang string) string {
	baseURL := strings.TrimSpace(os.Getenv("APP_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	acceptURL := fmt.Sprintf("%s/invitations/accept?token=%s&email=%s",
		strings.TrimRight(baseURL, "/"), url.QueryEscape(rawToken), url.QueryEscape(email))

	inviterName := template.HTMLEscapeString(inviter.FullName())
	escapedURL := template.HTMLEscapeString(acceptURL)
	expiry := template.HTMLEscapeString(utils.FormatDate(expiresAt, lang))

	intro := fmt.Sprintf("%s vous invite à rejoindre son espace Gestibud.", inviterName)
	action := "Accepter l'invitation"
	footer := fmt.Sprintf("Cette invitation expire le %s.", expiry)
	if lang == "en" {
		intro = fmt.Sprintf("%s has invited you to join their Gestibud workspace.", inviterName)
		action = "Accept the invitation"
		footer = fmt.Sprintf("This invitation expires on %s.", expiry)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;color:#1f2937;">
  <h2 style="color:#2563eb;">Gestibud</h2>
  <p>%s</p>
  <p>
    <a href="%s" style="display:inline-block;padding:10px 20px;background:#2563eb;color:#ffffff;text-decoration:none;border-radius:6px;">%s</a>
  </p>
  <p style="color:#6b7280;font-size:13px;">%s</p>
  <p style="color:#6b7280;font-size:13px;"><a href="%s" style="color:#2563eb;">%s</a></p>
</body>
</html>`, intro, escapedURL, action, footer, escapedURL, escapedURL)
}

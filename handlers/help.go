package handlers

import (
	"net/http"

	"firstcut/models"
	"firstcut/utils"

	"github.com/gin-gonic/gin"
)

var customerFAQs = []models.FAQItem{
	{Q: "How do I cancel a booking?", A: "You can cancel up to 30 minutes before the slot time from your booking history."},
	{Q: "What if the shop is closed?", A: "If a shop is unexpectedly closed, please report it here. We will refund your amount immediately."},
	{Q: "My payment failed but money was deducted.", A: "Don't worry! It will be auto-refunded within 24 hours."},
}

var ownerFAQs = []models.FAQItem{
	{Q: "When can I withdraw my earnings?", A: "Funds become available immediately after the service slot time has passed."},
	{Q: "Why is my balance 'Pending'?", A: "Money is held securely until the booking service is successfully completed to ensure customer satisfaction."},
	{Q: "How do I update my shop image?", A: "Please email support@firstcut.com with your shop ID and new images."},
}

// HelpHandler serves the role-specific help-center content.
func HelpHandler(c *gin.Context) {
	switch c.Param("role") {
	case models.RoleCustomer:
		c.JSON(http.StatusOK, gin.H{"faqs": customerFAQs})
	case models.RoleOwner:
		c.JSON(http.StatusOK, gin.H{"faqs": ownerFAQs})
	default:
		utils.JSONError(c, http.StatusBadRequest, "unknown help section", c.Param("role"))
	}
}

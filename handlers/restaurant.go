package handlers

import (
	"errors"
	"io"
	"net/http"

	"restohours/models"
	"restohours/services/hours"
	"restohours/services/restaurant"
	"restohours/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// RestaurantHandler serves open-restaurant queries.
type RestaurantHandler struct {
	Service restaurant.RestaurantService
}

func NewRestaurantHandler(svc restaurant.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{Service: svc}
}

type findOpenRequest struct {
	Datepicker string `json:"datepicker"`
}

// FindOpenHandler answers GET and POST /restaurant/findOpen. The date comes from the
// JSON body first and the datepicker query parameter second. A date that cannot be
// read matches no restaurants.
func (h *RestaurantHandler) FindOpenHandler(c *gin.Context) {
	logger := utils.RequestLogger(c)

	// Only JSON bodies are read; other content types fall back to the query string.
	var body findOpenRequest
	if c.Request.ContentLength != 0 && c.ContentType() == binding.MIMEJSON {
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
			return
		}
	}
	datepicker := body.Datepicker
	if datepicker == "" {
		datepicker = c.Query("datepicker")
	}

	at, err := utils.ParseDateTime(datepicker)
	if err != nil {
		logger.Info("findOpen: date not recognized", zap.String("datepicker", datepicker), zap.Error(err))
		c.JSON(http.StatusOK, []string{})
		return
	}

	names, err := h.Service.FindOpen(c.Request.Context(), at)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to find open restaurants", err.Error())
		return
	}

	logger.Info("findOpen", zap.String("datepicker", datepicker), zap.Int("numOpen", len(names)))
	c.JSON(http.StatusOK, names)
}

type hoursView struct {
	models.OperatingHours
	Label string `json:"label"`
}

type restaurantView struct {
	Name  string      `json:"name"`
	Hours []hoursView `json:"hours"`
}

// ListRestaurantsHandler returns the loaded dataset with normalized, labelled hours.
func (h *RestaurantHandler) ListRestaurantsHandler(c *gin.Context) {
	dataset := h.Service.Restaurants()
	views := make([]restaurantView, 0, len(dataset))
	for _, r := range dataset {
		v := restaurantView{Name: r.Name, Hours: make([]hoursView, 0, len(r.Hours))}
		for _, oh := range r.Hours {
			v.Hours = append(v.Hours, hoursView{OperatingHours: oh, Label: hours.Label(oh)})
		}
		views = append(views, v)
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": views})
}

// HealthHandler reports the dataset size and the last dependency check.
func (h *RestaurantHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"restaurants": len(h.Service.Restaurants()),
		"checks":      utils.GetHealthStatus(),
	})
}

package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// placeView is the wire shape of a catalogued place.
type placeView struct {
	URL           string        `json:"url"`
	Title         string        `json:"title"`
	Lat           float64       `json:"lat"`
	Lng           float64       `json:"lng"`
	Description   string        `json:"description,omitempty"`
	AverageRating float64       `json:"average_rating"`
	Comments      []commentView `json:"comments"`
	Ratings       []ratingView  `json:"ratings"`
	Photos        []photoView   `json:"photos"`
}

type commentView struct {
	Author string `json:"author,omitempty"`
	Text   string `json:"text"`
}

type ratingView struct {
	Author string `json:"author,omitempty"`
	Score  int    `json:"score"`
}

type photoView struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// health answers liveness probes.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// listPlaces returns every place in the catalog. Failures produce an
// explicit error body rather than an empty success.
func (s *Server) listPlaces(c *gin.Context) {
	places, err := s.catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	views := make([]placeView, 0, len(places))
	for i := range places {
		views = append(views, toPlaceView(&places[i]))
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "places": views})
}

// toPlaceView maps a domain place onto its wire shape.
func toPlaceView(p *domain.Place) placeView {
	view := placeView{
		URL:           p.URL,
		Title:         p.Title,
		Lat:           p.Lat,
		Lng:           p.Lng,
		Description:   p.Description,
		AverageRating: p.AverageRating(),
		Comments:      make([]commentView, 0, len(p.Comments)),
		Ratings:       make([]ratingView, 0, len(p.Ratings)),
		Photos:        make([]photoView, 0, len(p.Photos)),
	}

	for _, comment := range p.Comments {
		view.Comments = append(view.Comments, commentView{Author: comment.Author, Text: comment.Text})
	}
	for _, rating := range p.Ratings {
		view.Ratings = append(view.Ratings, ratingView{Author: rating.Author, Score: rating.Score})
	}
	for _, photo := range p.Photos {
		view.Photos = append(view.Photos, photoView{Name: photo.Name, URL: photo.URL})
	}

	return view
}

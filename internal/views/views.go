package views

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"studyroom/shared/constant"

	"github.com/gorilla/csrf"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var files embed.FS

const (
	layoutFile   = "templates/layout.html"
	layoutName   = "layout"
	templatesDir = "templates/"
)

const (
	PageIndex          = "index.html"
	PageRooms          = "rooms.html"
	PageRoomDetails    = "room_details.html"
	PageBooking        = "booking.html"
	PageHistory        = "history.html"
	PageStaffLogin     = "staff_login.html"
	PageStaffDashboard = "staff_dashboard.html"
	PageManageRooms    = "manage_rooms.html"
	PageRoomForm       = "room_form.html"
	PageAnalytics      = "analytics.html"
	PageFilter         = "filter.html"
	PageFilterResults  = "filter_results.html"
	PageError          = "error.html"
)

var pages = []string{
	PageIndex, PageRooms, PageRoomDetails, PageBooking, PageHistory, PageStaffLogin,
	PageStaffDashboard, PageManageRooms, PageRoomForm, PageAnalytics, PageFilter,
	PageFilterResults, PageError,
}

// Page is what every template receives. Data holds the page specific payload.
type Page struct {
	Title string
	Staff string
	CSRF  template.HTML
	Data  any
}

type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any)
}

type renderer struct {
	templates map[string]*template.Template
}

// New parses the layout once per page. The templates are embedded so a parse
// failure is a build defect and panics.
func New() Renderer {
	templates := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		templates[page] = template.Must(template.New(page).ParseFS(files, layoutFile, templatesDir+page))
	}

	return &renderer{templates: templates}
}

func (v *renderer) Render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	tpl, ok := v.templates[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	staff, _ := r.Context().Value(constant.ContextKeyUserID).(string)

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, layoutName, Page{
		Title: title,
		Staff: staff,
		CSRF:  csrf.TemplateField(r),
		Data:  data,
	}); err != nil {
		log.Error().Err(err).Str("page", page).Msg("failed to render template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Str("page", page).Msg("failed to write page")
	}
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/alhayat/internal/content"
	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/middleware"
	"github.com/example/alhayat/internal/models"
	"github.com/example/alhayat/internal/services"
	"github.com/example/alhayat/internal/store"
	"github.com/example/alhayat/internal/validator"
)

// PublicHandler serves the marketing site. Every page starts from its
// defaults and overlays whatever the store returns.
type PublicHandler struct {
	tables   *Tables
	notifier *services.TelegramService
}

// NewPublicHandler constructs PublicHandler.
func NewPublicHandler(tables *Tables, notifier *services.TelegramService) *PublicHandler {
	return &PublicHandler{tables: tables, notifier: notifier}
}

type homeView struct {
	Settings        models.HomePageSettings     `json:"settings"`
	Features        []models.HomeFeature        `json:"features"`
	Specializations []models.HomeSpecialization `json:"specializations"`
}

type servicesView struct {
	Services []models.Service `json:"services"`
}

type doctorsView struct {
	Doctors content.Filtered[models.Doctor] `json:"doctors"`
}

type medicineView struct {
	Settings   models.PharmacySettings   `json:"settings"`
	Features   []models.PharmacyFeature  `json:"features"`
	Categories []models.MedicineCategory `json:"categories"`
	Popular    []models.PopularMedicine  `json:"popular"`
	Services   []models.PharmacyService  `json:"services"`
}

type blogView struct {
	Featured *models.BlogPost                  `json:"featured"`
	Posts    content.Filtered[models.BlogPost] `json:"posts"`
}

type postView struct {
	Post    models.BlogPost   `json:"post"`
	Related []models.BlogPost `json:"related"`
}

func doctorSpecialty(d models.Doctor) string { return d.Specialty }

func blogCategory(p models.BlogPost) string { return p.Category }

func (h *PublicHandler) clinicSlot(dst *models.ClinicSettings) content.Slot {
	return content.Singleton(h.tables.Clinic, settingsQuery(), dst)
}

func (h *PublicHandler) render(c *fiber.Ctx, name, title string, clinic models.ClinicSettings, page interface{}) error {
	if middleware.WantsJSON(c) {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    fiber.Map{"clinic": clinic, "page": page},
		})
	}
	return c.Render("public/"+name, fiber.Map{
		"Title":  title,
		"Path":   c.Path(),
		"Clinic": clinic,
		"Page":   page,
	}, "layouts/public")
}

// Home renders the landing page.
func (h *PublicHandler) Home(c *fiber.Ctx) error {
	clinic := models.DefaultClinicSettings()
	view := homeView{
		Settings:        models.DefaultHomePageSettings(),
		Features:        models.DefaultHomeFeatures(),
		Specializations: models.DefaultHomeSpecializations(),
	}

	content.Bind(c.UserContext(),
		h.clinicSlot(&clinic),
		content.Singleton(h.tables.HomePage, settingsQuery(), &view.Settings),
		content.Collection(h.tables.HomeFeatures, activeQuery, &view.Features),
		content.Collection(h.tables.HomeSpecializations, activeQuery, &view.Specializations),
	)
	return h.render(c, "home", "Home", clinic, view)
}

// Services renders the departments page.
func (h *PublicHandler) Services(c *fiber.Ctx) error {
	clinic := models.DefaultClinicSettings()
	view := servicesView{Services: models.DefaultServices()}

	content.Bind(c.UserContext(),
		h.clinicSlot(&clinic),
		content.Collection(h.tables.Services, activeQuery, &view.Services),
	)
	return h.render(c, "services", "Our Services", clinic, view)
}

// Doctors renders the doctor directory filtered by ?specialty=.
func (h *PublicHandler) Doctors(c *fiber.Ctx) error {
	clinic := models.DefaultClinicSettings()
	doctors := []models.Doctor{}

	content.Bind(c.UserContext(),
		h.clinicSlot(&clinic),
		content.Collection(h.tables.Doctors, activeQuery, &doctors),
	)

	view := doctorsView{Doctors: content.NewFiltered(doctors, c.Query("specialty"), doctorSpecialty)}
	return h.render(c, "doctors", "Our Doctors", clinic, view)
}

// Medicine renders the pharmacy page.
func (h *PublicHandler) Medicine(c *fiber.Ctx) error {
	clinic := models.DefaultClinicSettings()
	view := medicineView{
		Settings:   models.DefaultPharmacySettings(),
		Features:   models.DefaultPharmacyFeatures(),
		Categories: models.DefaultMedicineCategories(),
		Popular:    models.DefaultPopularMedicines(),
		Services:   models.DefaultPharmacyServices(),
	}

	content.Bind(c.UserContext(),
		h.clinicSlot(&clinic),
		content.Singleton(h.tables.Pharmacy, settingsQuery(), &view.Settings),
		content.Collection(h.tables.PharmacyFeatures, activeQuery, &view.Features),
		content.Collection(h.tables.MedicineCategories, activeQuery, &view.Categories),
		content.Collection(h.tables.PopularMedicines, activeQuery, &view.Popular),
		content.Collection(h.tables.PharmacyServices, activeQuery, &view.Services),
	)
	return h.render(c, "medicine", "Pharmacy & Medicine", clinic, view)
}

// Blog renders the featured article and the category-filtered grid.
func (h *PublicHandler) Blog(c *fiber.Ctx) error {
	clinic := models.DefaultClinicSettings()
	posts := []models.BlogPost{}

	content.Bind(c.UserContext(),
		h.clinicSlot(&clinic),
		content.Collection(h.tables.Blog, publishedQuery, &posts),
	)

	featured := featuredPost(posts)
	grid := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		if featured != nil && p.ID == featured.ID {
			continue
		}
		grid = append(grid, p)
	}

	filtered := content.NewFiltered(grid, c.Query("category"), blogCategory)
	filtered.Categories = content.Categories(posts, blogCategory)

	return h.render(c, "blog", "Blog", clinic, blogView{Featured: featured, Posts: filtered})
}

// featuredPost picks the newest featured post; posts are newest first.
func featuredPost(posts []models.BlogPost) *models.BlogPost {
	for i := range posts {
		if posts[i].IsFeatured {
			p := posts[i]
			return &p
		}
	}
	return nil
}

// Post renders one published article. Unknown slugs go back to the blog.
func (h *PublicHandler) Post(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	post, err := h.tables.Blog.First(ctx, store.Query{
		Where:     []store.Cond{store.Eq("slug", slug), store.Eq("is_published", true)},
		Order:     "id asc",
		Cacheable: true,
	})
	if err != nil {
		if !errors.Is(err, store.ErrNoRows) {
			logger.Error(err, "Failed to load blog post", map[string]interface{}{"slug": slug})
		}
		if middleware.WantsJSON(c) {
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		return c.Redirect("/blog", fiber.StatusFound)
	}

	clinic := models.DefaultClinicSettings()
	view := postView{Post: *post, Related: []models.BlogPost{}}

	content.Bind(ctx,
		h.clinicSlot(&clinic),
		content.Collection(h.tables.Blog, store.Query{
			Where:     []store.Cond{store.Eq("category", post.Category), store.Eq("is_published", true)},
			Not:       []store.Cond{store.Eq("id", post.ID)},
			Order:     store.OrderPublished,
			Limit:     3,
			Cacheable: true,
		}, &view.Related),
	)
	return h.render(c, "post", post.Title, clinic, view)
}

type contactForm struct {
	Name          string `json:"name" form:"name" validate:"required,max=120"`
	Email         string `json:"email" form:"email" validate:"required,email,max=200"`
	Phone         string `json:"phone" form:"phone" validate:"required,max=40"`
	Service       string `json:"service" form:"service" validate:"max=120"`
	PreferredDate string `json:"preferred_date" form:"preferred_date" validate:"omitempty,datetime=2006-01-02"`
	Message       string `json:"message" form:"message" validate:"max=5000"`
}

func (f *contactForm) sanitize() {
	f.Name = validator.SanitizeString(f.Name)
	f.Email = validator.SanitizeString(f.Email)
	f.Phone = validator.SanitizeString(f.Phone)
	f.Service = validator.SanitizeString(f.Service)
	f.PreferredDate = validator.SanitizeString(f.PreferredDate)
	f.Message = validator.SanitizeString(f.Message)
}

func (f contactForm) submission() models.ContactSubmission {
	sub := models.ContactSubmission{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Service: f.Service,
		Message: f.Message,
	}
	if f.PreferredDate != "" {
		date := f.PreferredDate
		sub.PreferredDate = &date
	}
	return sub
}

type contactView struct {
	Sent        bool              `json:"sent"`
	Error       string            `json:"error,omitempty"`
	Form        contactForm       `json:"form"`
	Errors      map[string]string `json:"errors,omitempty"`
	Departments []string          `json:"departments"`
}

func (h *PublicHandler) renderContact(c *fiber.Ctx, status int, view contactView) error {
	clinic := models.DefaultClinicSettings()
	content.Bind(c.UserContext(), h.clinicSlot(&clinic))

	view.Departments = models.ContactDepartments
	c.Status(status)
	return h.render(c, "contact", "Contact Us", clinic, view)
}

// Contact renders the appointment request form.
func (h *PublicHandler) Contact(c *fiber.Ctx) error {
	return h.renderContact(c, fiber.StatusOK, contactView{Sent: c.Query("sent") == "1"})
}

// SubmitContact stores an appointment request. Every submission starts
// pending regardless of the payload.
func (h *PublicHandler) SubmitContact(c *fiber.Ctx) error {
	var form contactForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	form.sanitize()

	if err := validator.Validate(&form); err != nil {
		if middleware.WantsJSON(c) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"error":   validator.Summary(err),
				"errors":  validator.FieldErrors(err),
			})
		}
		return h.renderContact(c, fiber.StatusUnprocessableEntity, contactView{
			Form:   form,
			Errors: validator.FieldErrors(err),
			Error:  "Please correct the highlighted fields.",
		})
	}

	sub := form.submission()
	if err := h.tables.Contacts.Insert(c.UserContext(), &sub); err != nil {
		logger.Error(err, "Failed to store contact submission", map[string]interface{}{"email": sub.Email})
		if middleware.WantsJSON(c) {
			return fiber.NewError(fiber.StatusInternalServerError, "could not send your request")
		}
		return h.renderContact(c, fiber.StatusInternalServerError, contactView{
			Form:  form,
			Error: "We could not send your request. Please try again or call us.",
		})
	}

	logger.Info("Contact submission received", map[string]interface{}{"id": sub.ID, "service": sub.Service})
	h.notifier.NotifyAsync(sub)

	if middleware.WantsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": sub})
	}
	return c.Redirect("/contact?sent=1", fiber.StatusSeeOther)
}

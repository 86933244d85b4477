package delivery

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"musabaqa/config"
	"musabaqa/domain"
)

const duplicateMessage = "A record with these details already exists"

type registrationHandler struct {
	uc  domain.RegistrationUseCase
	log *logrus.Logger
}

func NewRegistrationDelivery(app *fiber.App, uc domain.RegistrationUseCase, log *logrus.Logger) {
	handler := &registrationHandler{
		uc:  uc,
		log: log,
	}

	app.Get("/healthz", handler.Health)
	app.Post("/check-duplicate", handler.CheckDuplicate)
	app.Post("/submit", handler.Submit)

	route := app.Group("/entries")
	route.Get("/", handler.List)
	route.Post("/", handler.Submit)
	route.Post("/import", handler.Import)
	route.Get("/template", handler.DownloadTemplate)
	route.Get("/:id", handler.GetByID)
	route.Put("/:id", handler.Update)
	route.Delete("/:id", handler.Delete)
}

func (rh *registrationHandler) CheckDuplicate(c *fiber.Ctx) error {
	var req domain.Registration
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(rh.log, "", fiber.StatusBadRequest, "CheckDuplicate")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	report, err := rh.uc.CheckDuplicate(c.UserContext(), &req)
	if err != nil {
		config.PrintLogInfo(rh.log, "", fiber.StatusInternalServerError, "CheckDuplicate")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error checking duplicates",
		})
	}

	if report.IsDuplicate {
		config.PrintLogInfo(rh.log, "", fiber.StatusConflict, "CheckDuplicate")
		return c.Status(fiber.StatusConflict).JSON(report)
	}

	config.PrintLogInfo(rh.log, "", fiber.StatusOK, "CheckDuplicate")
	return c.Status(fiber.StatusOK).JSON(report)
}

func (rh *registrationHandler) Submit(c *fiber.Ctx) error {
	var req domain.Registration
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(rh.log, "", fiber.StatusBadRequest, "Submit")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	reg, err := rh.uc.Create(c.UserContext(), &req)
	if err != nil {
		return rh.respondError(c, "Submit", "", err, "Error submitting form")
	}

	config.PrintLogInfo(rh.log, reg.ID, fiber.StatusCreated, "Submit")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Success",
		"data":    reg,
	})
}

func (rh *registrationHandler) List(c *fiber.Ctx) error {
	list, err := rh.uc.List(c.UserContext())
	if err != nil {
		return rh.respondError(c, "List", "", err, "Error fetching entries")
	}

	config.PrintLogInfo(rh.log, "", fiber.StatusOK, "List")
	return c.Status(fiber.StatusOK).JSON(list)
}

func (rh *registrationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	reg, err := rh.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return rh.respondError(c, "GetByID", id, err, "Error fetching entry")
	}

	config.PrintLogInfo(rh.log, id, fiber.StatusOK, "GetByID")
	return c.Status(fiber.StatusOK).JSON(reg)
}

func (rh *registrationHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch domain.RegistrationPatch
	if err := c.BodyParser(&patch); err != nil {
		config.PrintLogInfo(rh.log, id, fiber.StatusBadRequest, "Update")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	reg, err := rh.uc.Update(c.UserContext(), id, &patch)
	if err != nil {
		return rh.respondError(c, "Update", id, err, "Error updating entry")
	}

	config.PrintLogInfo(rh.log, id, fiber.StatusOK, "Update")
	return c.Status(fiber.StatusOK).JSON(reg)
}

func (rh *registrationHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := rh.uc.Delete(c.UserContext(), id); err != nil {
		return rh.respondError(c, "Delete", id, err, "Error deleting entry")
	}

	config.PrintLogInfo(rh.log, id, fiber.StatusOK, "Delete")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Entry deleted successfully",
	})
}

func (rh *registrationHandler) Import(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		config.PrintLogInfo(rh.log, "", fiber.StatusBadRequest, "Import")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to parse file",
		})
	}

	f, err := file.Open()
	if err != nil {
		config.PrintLogInfo(rh.log, "", fiber.StatusInternalServerError, "Import")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to open file",
		})
	}
	defer f.Close()

	rows, err := parseRegistrationCSV(f)
	if err != nil {
		config.PrintLogInfo(rh.log, "", fiber.StatusBadRequest, "Import")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to process CSV file",
		})
	}

	result, err := rh.uc.Import(c.UserContext(), rows)
	if err != nil {
		rh.log.WithError(err).WithField("function", "Import").Error("import aborted")
		config.PrintLogInfo(rh.log, "", fiber.StatusInternalServerError, "Import")
		created := 0
		if result != nil {
			created = result.Created
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Error importing entries",
			"message": "Import stopped before the end of the file",
			"created": created,
		})
	}

	config.PrintLogInfo(rh.log, "", fiber.StatusOK, "Import")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "File processed successfully",
		"created":    result.Created,
		"duplicates": result.Duplicates,
	})
}

func (rh *registrationHandler) DownloadTemplate(c *fiber.Ctx) error {
	body, err := templateCSV()
	if err != nil {
		config.PrintLogInfo(rh.log, "", fiber.StatusInternalServerError, "DownloadTemplate")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get the input data template",
			"error":   err.Error(),
		})
	}

	c.Set("Content-Disposition", "attachment; filename=input_data_template.csv")
	c.Set("Content-Type", "text/csv")

	config.PrintLogInfo(rh.log, "", fiber.StatusOK, "DownloadTemplate")
	return c.Send(body)
}

func (rh *registrationHandler) Health(c *fiber.Ctx) error {
	if err := rh.uc.Healthy(c.UserContext()); err != nil {
		rh.log.WithError(err).Warn("store health check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}

// respondError maps use case errors onto status codes. Conflicts, missing
// entries and invalid input carry their details; anything else answers with
// the generic fallback message.
func (rh *registrationHandler) respondError(c *fiber.Ctx, functionName, id string, err error, fallback string) error {
	var (
		dupErr *domain.DuplicateError
		valErr *domain.ValidationError
	)

	switch {
	case errors.Is(err, domain.ErrConflict):
		reasons := []string{}
		if errors.As(err, &dupErr) {
			reasons = dupErr.Reasons
		}
		config.PrintLogInfo(rh.log, id, fiber.StatusConflict, functionName)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"isDuplicate": true,
			"error":       duplicateMessage,
			"reasons":     reasons,
		})

	case errors.As(err, &valErr):
		config.PrintLogInfo(rh.log, id, fiber.StatusBadRequest, functionName)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   domain.ErrValidation.Error(),
			"details": valErr.Messages,
		})

	case errors.Is(err, domain.ErrNotFound):
		config.PrintLogInfo(rh.log, id, fiber.StatusNotFound, functionName)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Entry not found",
		})
	}

	rh.log.WithError(err).WithFields(logrus.Fields{"function": functionName, "entry_id": id}).Error(fallback)
	config.PrintLogInfo(rh.log, id, fiber.StatusInternalServerError, functionName)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}

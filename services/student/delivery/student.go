package delivery

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"studentregistry/domain"
)

type studentHandler struct {
	suc domain.StudentUseCase
}

func NewStudentDelivery(app *fiber.App, uc domain.StudentUseCase) {
	handler := &studentHandler{
		suc: uc,
	}

	route := app.Group("/v1/students")
	route.Post("/", handler.deliveryCreateStudent)
	route.Get("/", handler.deliveryGetAllStudent)
	route.Get("/:id", handler.deliveryGetStudentByID)
	route.Put("/:id", handler.deliveryUpdateStudent)
	route.Delete("/:id", handler.deliveryDeleteStudent)
}

func (sh *studentHandler) deliveryCreateStudent(c *fiber.Ctx) error {
	var req domain.Student
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	// id is server-assigned
	req.ID = 0

	if err := req.Validate(); err != nil {
		log.Errorf("Rejected student payload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid student request body",
		})
	}

	created, err := sh.suc.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePhoneNumber) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Unable to create student due to duplication",
			})
		}
		if errors.Is(err, domain.ErrCreationFailed) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to create student",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to create student",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (sh *studentHandler) deliveryGetAllStudent(c *fiber.Ctx) error {
	students, err := sh.suc.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to retrieve students",
		})
	}

	if len(*students) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "No students found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(students)
}

func (sh *studentHandler) deliveryGetStudentByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid student id",
		})
	}

	student, err := sh.suc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to retrieve student",
		})
	}

	if student == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Student not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(student)
}

func (sh *studentHandler) deliveryUpdateStudent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid student id",
		})
	}

	var req domain.StudentUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		log.Errorf("Rejected student payload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid student request body",
		})
	}

	if len(req.Changes()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No fields to update",
		})
	}

	updated, err := sh.suc.Update(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePhoneNumber) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Unable to update student due to duplication",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to update student",
		})
	}

	if !updated {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Student not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(domain.MutationResult{Result: true})
}

func (sh *studentHandler) deliveryDeleteStudent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid student id",
		})
	}

	deleted, err := sh.suc.Delete(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete student",
		})
	}

	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Student not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(domain.MutationResult{Result: true})
}

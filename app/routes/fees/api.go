package fees

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/masrooor/islamic-fees-hub/app/config"
	"github.com/masrooor/islamic-fees-hub/app/database"
	"github.com/masrooor/islamic-fees-hub/app/models"
)

var validate = validator.New()

type feeStructureRequest struct {
	ClassGrade string  `json:"class_grade" validate:"required"`
	FeeType    string  `json:"fee_type" validate:"required,oneof=tuition registration"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

func GetFeeStructuresAPI(c *fiber.Ctx) error {
	structures, err := database.GetFeeStructures(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee structures")
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"structures": structures,
		"count":      len(structures),
	})
}

// UpsertFeeStructureAPI sets the scheduled fee for a class grade and fee
// type. Posting again for the same pair replaces the amount.
func UpsertFeeStructureAPI(c *fiber.Ctx) error {
	var req feeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	structure := &models.FeeStructure{
		ClassGrade: req.ClassGrade,
		FeeType:    models.FeeType(req.FeeType),
		Amount:     req.Amount,
	}
	if err := database.UpsertFeeStructure(config.GetDB(), structure); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save fee structure")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "structure": structure})
}

func DeleteFeeStructureAPI(c *fiber.Ctx) error {
	if err := database.DeleteFeeStructure(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee structure")
	}
	return c.JSON(fiber.Map{"success": true})
}

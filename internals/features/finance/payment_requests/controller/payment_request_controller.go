package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "trungtam_backend/internals/features/center/classes/model"
	dto "trungtam_backend/internals/features/finance/payment_requests/dto"
	model "trungtam_backend/internals/features/finance/payment_requests/model"
	service "trungtam_backend/internals/features/finance/payment_requests/service"
	userModel "trungtam_backend/internals/features/users/user/model"
	helper "trungtam_backend/internals/helpers"
)

type PaymentRequestController struct {
	DB *gorm.DB
}

func NewPaymentRequestController(db *gorm.DB) *PaymentRequestController {
	return &PaymentRequestController{DB: db}
}

var validate = validator.New()

/* =========================================================
POST /api/a/payment-requests/bulk
Tạo tuần tự một đợt thu cho từng lớp được chọn; lớp fail
được gom lại, không chặn các lớp sau.
========================================================= */
func (ctl *PaymentRequestController) CreateBulk(c *fiber.Ctx) error {
	var req dto.BulkCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body không hợp lệ")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Load các lớp được chọn
	var classes []classModel.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id IN ?", req.ClassIDs).
		Find(&classes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được danh sách lớp")
	}
	if len(classes) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Không có lớp nào hợp lệ")
	}

	bulkClasses := make([]service.BulkClass, 0, len(classes))
	for i := range classes {
		subject := ""
		if classes[i].ClassSubject != nil {
			subject = *classes[i].ClassSubject
		}
		bulkClasses = append(bulkClasses, service.BulkClass{
			ID:         classes[i].ClassID,
			Name:       classes[i].ClassName,
			Subject:    subject,
			Fee:        classes[i].ClassFee,
			StudentIDs: classes[i].ClassStudentIDs,
		})
	}

	tpl := service.BulkTemplate{Title: req.Title, Amount: req.Amount, DueDate: req.DueDate}
	result := service.BulkCreate(bulkClasses, func(cls service.BulkClass) (int, error) {
		return ctl.createOne(c, cls, tpl)
	})

	// Không tạo được đợt nào → báo lỗi thay vì success rỗng
	if result.SuccessCount == 0 {
		log.Printf("[ERROR] bulk create: 0/%d lớp thành công", len(bulkClasses))
		return helper.ErrorWithDetails(c, fiber.StatusBadGateway,
			"Không tạo được đợt thu nào", result.Failures)
	}

	msg := fmt.Sprintf("Đã tạo %d đợt thu cho %d học sinh", result.SuccessCount, result.TotalStudents)
	return helper.SuccessWithCode(c, fiber.StatusCreated, msg, result)
}

// createOne: một transaction cho một lớp — đợt thu + dòng học sinh.
func (ctl *PaymentRequestController) createOne(c *fiber.Ctx, cls service.BulkClass, tpl service.BulkTemplate) (int, error) {
	amount := tpl.AmountFor(cls)
	if amount <= 0 {
		return 0, errors.New("lớp chưa có học phí chuẩn và mẫu không ghi đè số tiền")
	}

	var created int
	err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var subject *string
		if cls.Subject != "" {
			s := cls.Subject
			subject = &s
		}
		reqRow := model.PaymentRequestModel{
			PaymentRequestClassID:       cls.ID,
			PaymentRequestTitle:         tpl.Title,
			PaymentRequestAmount:        amount,
			PaymentRequestDueDate:       tpl.DueDate,
			PaymentRequestTotalStudents: len(cls.StudentIDs),
			PaymentRequestStatus:        model.RequestStatusActive,
			PaymentRequestClassName:     cls.Name,
			PaymentRequestClassSubject:  subject,
		}
		if err := tx.Create(&reqRow).Error; err != nil {
			return err
		}

		if len(cls.StudentIDs) == 0 {
			return nil
		}

		var students []userModel.UserModel
		if err := tx.Where("user_id IN ?", cls.StudentIDs).Find(&students).Error; err != nil {
			return err
		}

		rows := make([]model.StudentPaymentModel, 0, len(students))
		for i := range students {
			rows = append(rows, model.StudentPaymentModel{
				StudentPaymentRequestID:          reqRow.PaymentRequestID,
				StudentPaymentStudentID:          students[i].UserID,
				StudentPaymentStudentName:        students[i].UserName,
				StudentPaymentStudentCode:        students[i].UserCode,
				StudentPaymentScholarshipPercent: students[i].UserScholarshipPercent,
				StudentPaymentFinalAmount:        service.FinalAmount(amount, students[i].UserScholarshipPercent),
				StudentPaymentStatus:             model.PaymentStatusPending,
			})
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		created = len(rows)

		// total_students phản ánh số dòng thực tạo (học sinh đã bị xoá thì bỏ)
		if created != len(cls.StudentIDs) {
			if err := tx.Model(&model.PaymentRequestModel{}).
				Where("payment_request_id = ?", reqRow.PaymentRequestID).
				Update("payment_request_total_students", created).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

/* =========================================================
GET /api/a/payment-requests
========================================================= */
func (ctl *PaymentRequestController) List(c *fiber.Ctx) error {
	p := helper.ParsePageWith(c, "payment_request_created_at", "desc", helper.AdminOpts)

	var total int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.PaymentRequestModel{}).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}

	var requests []model.PaymentRequestModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order(p.SortBy + " " + p.SortOrder).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&requests).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không tải được danh sách đợt thu")
	}

	out := make([]dto.PaymentRequestResponse, 0, len(requests))
	for i := range requests {
		paid, collected, err := ctl.paidStats(c, requests[i].PaymentRequestID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
		}
		out = append(out, dto.FromRequestModel(&requests[i], paid, collected))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": out,
		"meta":  helper.BuildPageMeta(total, p),
	})
}

func (ctl *PaymentRequestController) paidStats(c *fiber.Ctx, requestID uuid.UUID) (int, int64, error) {
	type agg struct {
		PaidCount      int64
		TotalCollected int64
	}
	var a agg
	err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentPaymentModel{}).
		Select("COUNT(*) AS paid_count, COALESCE(SUM(student_payment_final_amount), 0) AS total_collected").
		Where("student_payment_request_id = ? AND student_payment_status = ?", requestID, model.PaymentStatusPaid).
		Scan(&a).Error
	return int(a.PaidCount), a.TotalCollected, err
}

/* =========================================================
POST /api/a/payment-requests/:id/cancel
========================================================= */
func (ctl *PaymentRequestController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	var reqRow model.PaymentRequestModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&reqRow, "payment_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy đợt thu")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	if reqRow.PaymentRequestStatus == model.RequestStatusCancelled {
		return helper.Error(c, fiber.StatusConflict, "Đợt thu đã bị huỷ trước đó")
	}

	// Ghi xong rồi mới đọc lại trả về — client không bao giờ thấy bản cũ
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.PaymentRequestModel{}).
		Where("payment_request_id = ?", id).
		Update("payment_request_status", model.RequestStatusCancelled).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Huỷ thất bại")
	}

	if err := ctl.DB.WithContext(c.UserContext()).First(&reqRow, "payment_request_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	paid, collected, _ := ctl.paidStats(c, id)
	return helper.Success(c, "Đã huỷ đợt thu", dto.FromRequestModel(&reqRow, paid, collected))
}

/* =========================================================
GET /api/a/payment-requests/:id/students
========================================================= */
func (ctl *PaymentRequestController) Students(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	reqRow, students, err := ctl.loadStudents(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy đợt thu")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}

	paid, collected, _ := ctl.paidStats(c, id)
	data := dto.StudentsData{
		Request:  dto.FromRequestModel(reqRow, paid, collected),
		Students: make([]dto.StudentPaymentResponse, 0, len(students)),
	}
	for i := range students {
		data.Students = append(data.Students, dto.FromStudentModel(&students[i]))
	}
	return helper.Success(c, "OK", data)
}

func (ctl *PaymentRequestController) loadStudents(c *fiber.Ctx, id uuid.UUID) (*model.PaymentRequestModel, []model.StudentPaymentModel, error) {
	var reqRow model.PaymentRequestModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&reqRow, "payment_request_id = ?", id).Error; err != nil {
		return nil, nil, err
	}
	var students []model.StudentPaymentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_payment_request_id = ?", id).
		Order("student_payment_student_name ASC").
		Find(&students).Error; err != nil {
		return nil, nil, err
	}
	return &reqRow, students, nil
}

/* =========================================================
GET /api/a/payment-requests/:id/students/export — xlsx
========================================================= */
func (ctl *PaymentRequestController) ExportStudents(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	reqRow, students, err := ctl.loadStudents(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy đợt thu")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}

	f, err := service.BuildStudentsWorkbook(reqRow, students)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Không dựng được file Excel")
	}

	filename := fmt.Sprintf("dot-thu-%s.xlsx", id.String()[:8])
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return f.Write(c.Response().BodyWriter())
}

/* =========================================================
POST /api/a/payments/:id/confirm-cash
========================================================= */
func (ctl *PaymentRequestController) ConfirmCash(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID không hợp lệ")
	}

	var row model.StudentPaymentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "student_payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Không tìm thấy khoản thu")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	if row.StudentPaymentStatus == model.PaymentStatusPaid {
		return helper.Error(c, fiber.StatusConflict, "Khoản thu đã được xác nhận trước đó")
	}

	// đợt thu đã huỷ thì không nhận tiền nữa
	var reqRow model.PaymentRequestModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&reqRow, "payment_request_id = ?", row.StudentPaymentRequestID).Error; err == nil {
		if reqRow.PaymentRequestStatus == model.RequestStatusCancelled {
			return helper.Error(c, fiber.StatusConflict, "Đợt thu đã bị huỷ")
		}
	}

	now := time.Now()
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentPaymentModel{}).
		Where("student_payment_id = ?", id).
		Updates(map[string]interface{}{
			"student_payment_status":  model.PaymentStatusPaid,
			"student_payment_paid_at": now,
		}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Xác nhận thất bại")
	}

	if err := ctl.DB.WithContext(c.UserContext()).First(&row, "student_payment_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Lỗi hệ thống")
	}
	return helper.Success(c, "Đã xác nhận đóng tiền mặt", dto.FromStudentModel(&row))
}

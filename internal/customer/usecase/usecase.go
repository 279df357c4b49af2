package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lodfresh/customer-service/internal/customer"
	"github.com/lodfresh/customer-service/internal/customer/dto"
	"github.com/lodfresh/customer-service/internal/model"
	"github.com/lodfresh/customer-service/internal/order"
	"github.com/lodfresh/customer-service/pkg/logger"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo   customer.Repository
	orders order.Repository
	logger logger.ZapLogger
	zone   *time.Location
}

func NewCustomerUseCase(repo customer.Repository, orders order.Repository, log logger.ZapLogger) customer.UseCase {
	zone, err := time.LoadLocation("Asia/Jerusalem")
	if err != nil {
		zone = time.UTC
	}
	return &customerUseCase{
		repo:   repo,
		orders: orders,
		logger: log,
		zone:   zone,
	}
}

func (uc *customerUseCase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	c := &model.Customer{
		Name:   strings.TrimSpace(input.Name),
		Phones: strings.TrimSpace(input.Phones),
	}
	if input.Address != "" {
		addr := input.Address
		c.Address = &addr
	}
	if input.Email != "" {
		email := input.Email
		c.Email = &email
	}
	if input.DefaultPackage != "" {
		pkg := model.PackageType(input.DefaultPackage)
		c.DefaultPackage = &pkg
	}

	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// ImportCSV reads rows of "first,last,phone[,address]" below a header line.
// The two name columns are joined and phones get their dropped leading zero
// back (sheet exports strip it).
func (uc *customerUseCase) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	parsed := []*model.Customer{}
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read csv: %w", err)
		}
		if first {
			first = false
			continue
		}
		if len(record) < 3 {
			continue
		}

		name := strings.TrimSpace(record[0])
		if second := strings.TrimSpace(record[1]); second != "" {
			name = name + " " + second
		}
		phone := strings.TrimSpace(record[2])
		if phone != "" && !strings.HasPrefix(phone, "0") {
			phone = "0" + phone
		}

		c := &model.Customer{Name: name, Phones: phone}
		if len(record) > 3 {
			if addr := strings.TrimSpace(record[3]); addr != "" {
				c.Address = &addr
			}
		}
		parsed = append(parsed, c)
	}

	if err := uc.repo.SaveAll(ctx, parsed); err != nil {
		return 0, err
	}
	uc.logger.Info("imported customers from csv", zap.Int("count", len(parsed)))
	return len(parsed), nil
}

func (uc *customerUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	customers, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"name", "phones", "address"})
	for _, c := range customers {
		addr := ""
		if c.Address != nil {
			addr = *c.Address
		}
		_ = w.Write([]string{stripNewlines(c.Name), stripNewlines(c.Phones), stripNewlines(addr)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (uc *customerUseCase) SearchByNames(ctx context.Context, names string) ([]dto.CustomerSearchResult, error) {
	seen := map[int64]bool{}
	found := []model.Customer{}

	for _, line := range strings.Split(names, "\n") {
		token := strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if token == "" {
			continue
		}
		part, err := uc.orders.FindDistinctCustomersByNameContaining(ctx, token)
		if err != nil {
			return nil, err
		}
		for _, c := range part {
			if !seen[c.ID] {
				seen[c.ID] = true
				found = append(found, c)
			}
		}
	}

	results := make([]dto.CustomerSearchResult, 0, len(found))
	for _, c := range found {
		uploadedAt, err := uc.orders.FindLatestUploadedAt(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, dto.CustomerSearchResult{
			Name:                c.Name,
			Phones:              c.Phones,
			UploadedAt:          uploadedAt,
			UploadedAtFormatted: uc.formatUploadedAt(uploadedAt),
		})
	}
	return results, nil
}

// MatchForgotten takes the weekly forgotten-orders CSV (name split across
// columns 2 and 3) and returns the persisted customers it names exactly.
func (uc *customerUseCase) MatchForgotten(ctx context.Context, r io.Reader) ([]model.Customer, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	forgotten := map[string]bool{}
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if first {
			first = false
			continue
		}
		if len(record) < 3 {
			continue
		}
		fullName := strings.TrimSpace(record[1]) + " " + strings.TrimSpace(record[2])
		forgotten[fullName] = true
	}

	customers, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := []model.Customer{}
	for _, c := range customers {
		if forgotten[c.Name] {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (uc *customerUseCase) formatUploadedAt(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.In(uc.zone).Format("02/01/2006 15:04")
}

func stripNewlines(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, "\r", "")
}

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finanzas-app/backend/config"
	"github.com/finanzas-app/backend/internal/infra/dependency"
	"github.com/finanzas-app/backend/internal/integration/email"
	"github.com/finanzas-app/backend/internal/integration/persistence/model"
	"github.com/finanzas-app/backend/test/integration/mock"
)

// seedCreationDate is the creation date for obligations seeded directly into
// the database, far enough in the past that the creation floor never filters
// the periods the scenarios assert on.
var seedCreationDate = time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)

type testContext struct {
	server    *httptest.Server
	client    *http.Client
	headers   map[string]string
	response  *response
	db        *mock.Db
	emailMock *email.MockEmailSender

	accountID            uuid.UUID
	destinationAccountID uuid.UUID
	obligationID         uuid.UUID
	movementID           uuid.UUID
}

type response struct {
	status int
	body   any
	raw    []byte
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:    &http.Client{Timeout: 10 * time.Second},
		emailMock: email.NewMockEmailSender(),
		db: mock.NewDb(map[string]any{
			"accounts":             &model.AccountModel{},
			"account_transactions": &model.TransactionModel{},
			"obligations":          &model.ObligationModel{},
			"settlements":          &model.SettlementModel{},
			"variable_movements":   &model.MovementModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Seed steps
	ctx.Given(`^an account "([^"]*)" exists with balance "([^"]*)"$`, test.anAccountExistsWithBalance)
	ctx.Given(`^a second account "([^"]*)" exists with balance "([^"]*)"$`, test.aSecondAccountExistsWithBalance)
	ctx.Given(`^a fixed expense "([^"]*)" of "([^"]*)" due on day (\d+) exists$`, test.aFixedExpenseExists)
	ctx.Given(`^a payable to "([^"]*)" of "([^"]*)" with monthly installments of "([^"]*)" due on day (\d+) exists$`, test.aPayableExists)
	ctx.Given(`^the period "([^"]*)" of month "([^"]*)" is already settled$`, test.thePeriodIsAlreadySettled)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Email assertion steps
	ctx.Then(`^a digest email should be sent to "([^"]*)"$`, test.aDigestEmailShouldBeSentTo)
	ctx.Then(`^no digest email should be sent$`, test.noDigestEmailShouldBeSent)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accountID = uuid.Nil
	t.destinationAccountID = uuid.Nil
	t.obligationID = uuid.Nil
	t.movementID = uuid.Nil

	if err := t.db.Reset(); err != nil {
		return err
	}
	t.emailMock.Reset()

	cfg := config.Load()
	cfg.Email.DigestTo = ""

	injector := dependency.NewInjector(cfg, t.db.DbConn, t.emailMock, func() bool {
		return t.db != nil && t.db.DbConn != nil
	})
	engine := injector.Router.Setup("test")

	if t.server != nil {
		t.server.Close()
	}
	t.server = httptest.NewServer(engine)

	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return errors.New("test server is not running")
	}
	return nil
}

func (t *testContext) anAccountExistsWithBalance(name, balance string) error {
	id, err := t.createAccount(name, balance)
	if err != nil {
		return err
	}
	t.accountID = id
	return nil
}

func (t *testContext) aSecondAccountExistsWithBalance(name, balance string) error {
	id, err := t.createAccount(name, balance)
	if err != nil {
		return err
	}
	t.destinationAccountID = id
	return nil
}

func (t *testContext) createAccount(name, balance string) (uuid.UUID, error) {
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid balance '%s': %w", balance, err)
	}

	now := time.Now().UTC()
	accountModel := &model.AccountModel{
		ID:        uuid.New(),
		Name:      name,
		Category:  "bank",
		Currency:  "COP",
		Balance:   amount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := t.db.DbConn.Create(accountModel).Error; err != nil {
		return uuid.Nil, err
	}
	return accountModel.ID, nil
}

func (t *testContext) aFixedExpenseExists(name, amount string, day int) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	now := time.Now().UTC()
	obligationModel := &model.ObligationModel{
		ID:           uuid.New(),
		Type:         "fixed_expense",
		Name:         name,
		CreationDate: seedCreationDate,
		NominalDay:   day,
		ValueMode:    "fixed",
		Amount:       &value,
		Periodicity:  "monthly",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := t.db.DbConn.Create(obligationModel).Error; err != nil {
		return err
	}
	t.obligationID = obligationModel.ID
	return nil
}

func (t *testContext) aPayableExists(name, total, installment string, day int) error {
	totalAmount, err := decimal.NewFromString(total)
	if err != nil {
		return fmt.Errorf("invalid total '%s': %w", total, err)
	}
	installmentAmount, err := decimal.NewFromString(installment)
	if err != nil {
		return fmt.Errorf("invalid installment '%s': %w", installment, err)
	}

	now := time.Now().UTC()
	obligationModel := &model.ObligationModel{
		ID:                uuid.New(),
		Type:              "payable",
		Name:              name,
		CreationDate:      seedCreationDate,
		TotalAmount:       totalAmount,
		PendingBalance:    totalAmount,
		Periodicity:       "monthly",
		PaymentMode:       "installments",
		NominalDay:        day,
		InstallmentAmount: &installmentAmount,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := t.db.DbConn.Create(obligationModel).Error; err != nil {
		return err
	}
	t.obligationID = obligationModel.ID
	return nil
}

func (t *testContext) thePeriodIsAlreadySettled(periodKey, monthID string) error {
	if t.obligationID == uuid.Nil {
		return errors.New("no obligation seeded")
	}

	settlementModel := &model.SettlementModel{
		ID:           uuid.New(),
		ObligationID: t.obligationID,
		MonthID:      monthID,
		PeriodKey:    periodKey,
		Date:         time.Now(),
		Amount:       decimal.NewFromInt(1),
		AccountID:    t.accountID,
		CreatedAt:    time.Now().UTC(),
	}
	return t.db.DbConn.Create(settlementModel).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{account_id}}", t.accountID.String())
	content = strings.ReplaceAll(content, "{{destination_account_id}}", t.destinationAccountID.String())
	content = strings.ReplaceAll(content, "{{obligation_id}}", t.obligationID.String())
	content = strings.ReplaceAll(content, "{{movement_id}}", t.movementID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.server.URL + path
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		raw:    bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)

	return nil
}

// captureIDs remembers the IDs of resources created through the API so later
// steps can reference them via placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasField(body, "balance"):
		t.accountID = id
	case hasField(body, "pending_balance"):
		t.obligationID = id
	case hasField(body, "category"):
		t.movementID = id
	}
}

func hasField(body map[string]any, field string) bool {
	_, ok := body[field]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain '%s': %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, string(t.response.raw))
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) aDigestEmailShouldBeSentTo(recipient string) error {
	if len(t.emailMock.SentEmails) == 0 {
		return errors.New("no digest email was sent")
	}
	sent := t.emailMock.SentEmails[len(t.emailMock.SentEmails)-1]
	if sent.To != recipient {
		return fmt.Errorf("digest sent to '%s', expected '%s'", sent.To, recipient)
	}
	return nil
}

func (t *testContext) noDigestEmailShouldBeSent() error {
	if len(t.emailMock.SentEmails) != 0 {
		return fmt.Errorf("expected no digest email, got %d", len(t.emailMock.SentEmails))
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	objectMap, ok := object.(map[string]any)
	if !ok {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/recurrence"
	"github.com/expense-tracker/backend/internal/application/usecase/summary"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/cache"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/test/integration/mock"
)

var (
	serverInit     sync.Once
	portInit       sync.Once
	testServerPort int

	testDB       *mock.Db
	testTime     = mock.NewTime()
	testCache    adapter.SummaryCache
	testRepo     adapter.ExpenseRepository
	testGenerate *recurrence.GenerateRecurringUseCase
)

type testContext struct {
	uri     string
	client  *http.Client
	headers map[string]string

	response     *http.Response
	responseBody []byte

	lastExpenseID uuid.UUID
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
	}

	if testDB == nil {
		testDB = mock.NewDb(&model.ExpenseModel{})
		testRepo = persistence.NewExpenseRepository(testDB.DbConn)
		testGenerate = recurrence.NewGenerateRecurringUseCase(testRepo)
		testCache = cache.NewSummaryCache(mock.NewRedis())
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)

	// Expense setup steps
	ctx.Given(`^an expense "([^"]*)" of ([\d.]+) in "([^"]*)" on "([^"]*)"$`, test.anExpenseExists)
	ctx.Given(`^an expense exists with:$`, test.anExpenseExistsWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^the recurrence generation runs for "([^"]*)"$`, test.theRecurrenceGenerationRunsFor)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response should contain (\d+) expenses$`, test.theResponseShouldContainExpenses)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) expenses$`, test.theDbShouldContainExpenses)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.responseBody = nil
	t.lastExpenseID = uuid.Nil

	if testDB != nil {
		if err := testDB.Reset(); err != nil {
			panic(err)
		}
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			createUseCase := expense.NewCreateExpenseUseCase(testRepo)
			getUseCase := expense.NewGetExpenseUseCase(testRepo)
			listUseCase := expense.NewListExpensesUseCase(testRepo)
			updateUseCase := expense.NewUpdateExpenseUseCase(testRepo)
			deleteUseCase := expense.NewDeleteExpenseUseCase(testRepo)
			searchUseCase := expense.NewSearchExpensesUseCase(testRepo)
			sortUseCase := expense.NewSortExpensesUseCase(testRepo)
			listRecurringUseCase := recurrence.NewListRecurringUseCase(testRepo)
			setStatusUseCase := recurrence.NewSetRecurringStatusUseCase(testRepo)
			getSummaryUseCase := summary.NewGetSummaryUseCase(testRepo)
			getCategorySummaryUseCase := summary.NewGetCategorySummaryUseCase(testRepo)
			getDailySummaryUseCase := summary.NewGetDailySummaryUseCase(testRepo)

			onWrite := func(c *gin.Context) {
				testCache.Invalidate(c.Request.Context())
			}

			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return true },
			)

			expenseController := controller.NewExpenseController(
				createUseCase,
				getUseCase,
				listUseCase,
				updateUseCase,
				deleteUseCase,
				searchUseCase,
				sortUseCase,
				listRecurringUseCase,
				setStatusUseCase,
				onWrite,
			)

			summaryController := controller.NewSummaryController(
				getSummaryUseCase,
				getCategorySummaryUseCase,
				getDailySummaryUseCase,
				testCache,
				time.Minute,
				testTime.Now,
			)

			writeRateLimiter := middleware.NewRateLimiter()

			r := router.NewRouter(healthController, expenseController, summaryController, writeRateLimiter)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// Step implementations

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theCurrentDateIs(date string) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	// Pin to midday so day windows are unambiguous.
	testTime.SetCurrentTime(d.Add(12 * time.Hour))
	return nil
}

func (t *testContext) anExpenseExists(title, amount, category, date string) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	exp := entity.NewExpense(title, amt, category, d, entity.RecurrenceNone, "", "", nil)
	if err := testRepo.Insert(context.Background(), exp); err != nil {
		return err
	}
	t.lastExpenseID = exp.ID
	return nil
}

// expenseSeed mirrors the JSON shape accepted by the docstring setup step.
type expenseSeed struct {
	Title             string  `json:"title"`
	Amount            string  `json:"amount"`
	Category          string  `json:"category"`
	Date              string  `json:"date"`
	Recurrence        string  `json:"recurrence"`
	Note              string  `json:"note"`
	Tags              string  `json:"tags"`
	Active            *bool   `json:"active"`
	RecurrenceEndDate *string `json:"recurrence_end_date"`
}

func (t *testContext) anExpenseExistsWith(body *godog.DocString) error {
	var seed expenseSeed
	if err := json.Unmarshal([]byte(body.Content), &seed); err != nil {
		return fmt.Errorf("invalid expense seed: %w", err)
	}

	d, err := time.Parse("2006-01-02", seed.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", seed.Date, err)
	}
	amt, err := decimal.NewFromString(seed.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", seed.Amount, err)
	}
	rec, ok := entity.ParseRecurrence(seed.Recurrence)
	if !ok {
		return fmt.Errorf("invalid recurrence %q", seed.Recurrence)
	}

	var endDate *time.Time
	if seed.RecurrenceEndDate != nil {
		parsed, err := time.Parse("2006-01-02", *seed.RecurrenceEndDate)
		if err != nil {
			return fmt.Errorf("invalid recurrence end date: %w", err)
		}
		endDate = &parsed
	}

	exp := entity.NewExpense(seed.Title, amt, seed.Category, d, rec, seed.Note, seed.Tags, endDate)
	if seed.Active != nil {
		exp.Active = *seed.Active
	}

	if err := testRepo.Insert(context.Background(), exp); err != nil {
		return err
	}
	t.lastExpenseID = exp.ID
	return nil
}

// replacePlaceholders substitutes scenario values into paths and bodies.
func (t *testContext) replacePlaceholders(content string) string {
	if t.lastExpenseID != uuid.Nil {
		content = strings.ReplaceAll(content, "{expenseId}", t.lastExpenseID.String())
	}
	return content
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.executeRequest(method, path, []byte(t.replacePlaceholders(body.Content)))
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + t.replacePlaceholders(path)

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	t.response = resp
	t.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func (t *testContext) theRecurrenceGenerationRunsFor(date string) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	_, err = testGenerate.Execute(context.Background(), recurrence.GenerateRecurringInput{Today: d})
	return err
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, t.response.StatusCode, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal(t.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.responseBody))
	}
	return nil
}

// lookupField resolves a dot-separated field path in the response JSON.
func (t *testContext) lookupField(field string) (any, error) {
	var data any
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(field, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object", field)
		}
		current, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in response. Body: %s", field, string(t.responseBody))
		}
	}
	return current, nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

func (t *testContext) theResponseShouldContainExpenses(expected int) error {
	var data struct {
		Count    int   `json:"count"`
		Expenses []any `json:"expenses"`
	}
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}
	if data.Count != expected || len(data.Expenses) != expected {
		return fmt.Errorf("expected %d expenses, got count=%d len=%d. Body: %s", expected, data.Count, len(data.Expenses), string(t.responseBody))
	}
	return nil
}

func (t *testContext) theDbShouldContainExpenses(expected int) error {
	count, err := testDB.Count(&model.ExpenseModel{})
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d expenses in the db, got %d", expected, count)
	}
	return nil
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"sistema_escolar/internal/events"
	"sistema_escolar/internal/handlers"
	"sistema_escolar/internal/models"
	"sistema_escolar/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

// AuthMiddlewareTest sustituye al middleware JWT: toma el usuario del
// encabezado X-Test-UserID y resuelve su rol igual que el middleware real.
func AuthMiddlewareTest() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := c.Request.Header.Get("X-Test-UserID")
		id, err := strconv.Atoi(userIDStr)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		var user models.User
		if err := storage.DB.First(&user, uint(id)).Error; err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Next()
	}
}

func setupTestServer() *httptest.Server {
	gin.SetMode(gin.TestMode)

	storage.ConnectTestingDatabase()
	if err := storage.DB.AutoMigrate(&models.User{}, &models.AcademicEvent{}); err != nil {
		log.Fatal("Error en la migración... ", err.Error())
	}
	storage.DB.Exec("DELETE FROM academic_events")
	storage.DB.Exec("DELETE FROM users")

	r := gin.New()

	api := r.Group("/api", AuthMiddlewareTest())
	{
		api.GET("/eventos", handlers.ListEventsHandler)
		api.GET("/eventos/:id", handlers.GetEventHandler)
		api.POST("/eventos", handlers.CreateEventHandler)
		api.PUT("/eventos", handlers.UpdateEventHandler)
		api.DELETE("/eventos/:id", handlers.DeleteEventHandler)
	}

	return httptest.NewServer(r)
}

func createTestUser(t *testing.T, role string) models.User {
	user := models.User{
		FirstName:    "Usuario",
		LastName:     "De Prueba",
		Email:        fmt.Sprintf("%s_%d@fcc.mx", role, time.Now().UnixNano()),
		PasswordHash: "hash",
		Role:         role,
	}
	assert.NoError(t, storage.DB.Create(&user).Error)
	return user
}

func createTestEvent(t *testing.T, responsible uint, audience []string, program *string, date time.Time, startTime string) models.AcademicEvent {
	event := models.AcademicEvent{
		Name:             "Evento de prueba",
		EventType:        "Conferencia",
		Date:             date,
		StartTime:        startTime,
		EndTime:          "18:00",
		Location:         "Auditorio A",
		TargetAudience:   datatypes.NewJSONSlice(audience),
		EducationProgram: program,
		Description:      "Descripción de prueba.",
		MaxCapacity:      100,
		ResponsibleID:    responsible,
	}
	assert.NoError(t, storage.DB.Omit("Responsible").Create(&event).Error)
	return event
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, userID uint, body interface{}) *http.Response {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-UserID", fmt.Sprintf("%d", userID))
	res, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	return res
}

func decodeList(t *testing.T, res *http.Response) []events.EventResponse {
	defer res.Body.Close()
	var list []events.EventResponse
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&list))
	return list
}

func validPayload(responsible uint) map[string]interface{} {
	future := time.Now().AddDate(0, 1, 0)
	return map[string]interface{}{
		"name":             "Taller de Python",
		"event_type":       "Taller",
		"date":             future.Format("2006-01-02"),
		"start_time":       "10:00",
		"end_time":         "12:00",
		"location":         "Laboratorio 3",
		"target_audience":  []string{events.AudienceGeneral},
		"responsible_user": responsible,
		"description":      "Introducción práctica al lenguaje.",
		"capacity":         40,
	}
}

func TestListVisibilityByRole(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	admin := createTestUser(t, models.RoleAdmin)
	teacher := createTestUser(t, models.RoleTeacher)
	student := createTestUser(t, models.RoleStudent)
	outsider := createTestUser(t, "invitado")

	future := time.Now().AddDate(0, 1, 0)
	program := "Ingeniería en Ciencias de la Computación"
	createTestEvent(t, teacher.ID, []string{events.AudienceStudents}, &program, future, "10:00")
	createTestEvent(t, teacher.ID, []string{events.AudienceTeachers}, nil, future, "11:00")
	createTestEvent(t, teacher.ID, []string{events.AudienceGeneral}, nil, future, "12:00")

	cases := []struct {
		user     models.User
		expected int
	}{
		{admin, 3},
		{teacher, 2},
		{student, 2},
		{outsider, 0},
	}
	for _, tc := range cases {
		res := doRequest(t, ts, "GET", "/api/eventos", tc.user.ID, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		list := decodeList(t, res)
		assert.Len(t, list, tc.expected, "listado incorrecto para rol %s", tc.user.Role)
	}
}

func TestListOrdering(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	admin := createTestUser(t, models.RoleAdmin)
	teacher := createTestUser(t, models.RoleTeacher)

	near := time.Now().AddDate(0, 1, 0)
	far := time.Now().AddDate(0, 2, 0)
	late := createTestEvent(t, teacher.ID, []string{events.AudienceGeneral}, nil, near, "15:00")
	early := createTestEvent(t, teacher.ID, []string{events.AudienceGeneral}, nil, near, "08:00")
	upcoming := createTestEvent(t, teacher.ID, []string{events.AudienceGeneral}, nil, far, "12:00")

	res := doRequest(t, ts, "GET", "/api/eventos", admin.ID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	list := decodeList(t, res)
	// Fecha descendente primero, y a fecha igual, hora de inicio ascendente.
	assert.Equal(t, []uint{upcoming.ID, early.ID, late.ID}, []uint{list[0].ID, list[1].ID, list[2].ID})
}

func TestCreateAndRetrieveRoundTrip(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	admin := createTestUser(t, models.RoleAdmin)
	teacher := createTestUser(t, models.RoleTeacher)

	future := time.Now().AddDate(0, 1, 0)
	payload := validPayload(teacher.ID)
	payload["date"] = future.Format("02/01/2006") // formato alterno de entrada
	payload["start_time"] = "9:00"

	res := doRequest(t, ts, "POST", "/api/eventos", admin.ID, payload)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	var created events.EventResponse
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&created))
	res.Body.Close()

	res = doRequest(t, ts, "GET", "/api/eventos/"+strconv.Itoa(int(created.ID)), admin.ID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	var fetched events.EventResponse
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&fetched))
	res.Body.Close()

	assert.Equal(t, "Taller de Python", fetched.Name)
	assert.Equal(t, "Taller", fetched.EventType)
	assert.Equal(t, future.Format("2006-01-02"), fetched.Date) // normalizada al formato interno
	assert.Equal(t, "09:00", fetched.StartTime)                // normalizada con cero a la izquierda
	assert.Equal(t, "12:00", fetched.EndTime)
	assert.Equal(t, []string{events.AudienceGeneral}, fetched.TargetAudience)
	assert.Nil(t, fetched.EducationProgram)
	assert.Equal(t, teacher.ID, fetched.ResponsibleUser)
	assert.Equal(t, teacher.Email, fetched.ResponsibleUserInfo.Email)
	assert.Equal(t, 40, fetched.Capacity)
}

func TestCreateForbiddenForNonAdmin(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	teacher := createTestUser(t, models.RoleTeacher)
	student := createTestUser(t, models.RoleStudent)

	for _, user := range []models.User{teacher, student} {
		res := doRequest(t, ts, "POST", "/api/eventos", user.ID, validPayload(teacher.ID))
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
		res.Body.Close()
	}
}

func TestCreateValidationErrorMap(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	admin := createTestUser(t, models.RoleAdmin)
	teacher := createTestUser(t, models.RoleTeacher)

	payload := validPayload(teacher.ID)
	payload["name"] = "¡Taller inválido!"
	payload["start_time"] = "10:00"
	payload["end_time"] = "09:00"
	payload["capacity"] = 1000
	payload["target_audience"] = []string{events.AudienceStudents} // sin programa

	res := doRequest(t, ts, "POST", "/api/eventos", admin.ID, payload)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	defer res.Body.Close()

	var body struct {
		Code   string            `json:"code"`
		Errors map[string]string `json:"errors"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	// Todos los errores de campo llegan juntos, no solo el primero.
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "end_time")
	assert.Contains(t, body.Errors, "capacity")
	assert.Contains(t, body.Errors, "education_program")

	// Nada debe haberse persistido.
	var count int64
	storage.DB.Model(&models.AcademicEvent{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateCapacityBounds(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	admin := createTestUser(t, models.RoleAdmin)
	teacher := createTestUser(t, models.RoleTeacher)

	payload := validPayload(teacher.ID)
	payload["capacity"] = 999
	res := doRequest(t, ts, "POST", "/api/eventos", admin.ID, payload)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	res.Body.Close()

	payload = validPayload(teacher.ID)
	payload["capacity"] = 1000
	res = doRequest(t, ts, "POST", "/api/eventos", admin.ID, payload)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()
}

func TestRetrieveVisibilityAndNotFound(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	teacher := createTestUser(t, models.RoleTeacher)
	student := createTestUser(t, models.RoleStudent)

	future := time.Now().AddDate(0, 1, 0)
	forTeachers := createTestEvent(t, teacher.ID, []string{events.AudienceTeachers}, nil, future, "10:00")

	// El alumno no puede ver un evento dirigido solo a profesores.
	res := doRequest(t, ts, "GET", "/api/eventos/"+strconv.Itoa(int(forTeachers.ID)), student.ID, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	res.Body.Close()

	res = doRequest(t, ts, "GET", "/api/eventos/424242", student.ID, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	res.Body.Close()

	res = doRequest(t, ts, "GET", "/api/eventos/abc", student.ID, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()
}

func TestUpdateMergesOmittedFields(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	admin := createTestUser(t, models.RoleAdmin)
	teacher := createTestUser(t, models.RoleTeacher)

	future := time.Now().AddDate(0, 1, 0)
	event := createTestEvent(t, teacher.ID, []string{events.AudienceGeneral}, nil, future, "10:00")

	res := doRequest(t, ts, "PUT", "/api/eventos", admin.ID, map[string]interface{}{
		"id":   event.ID,
		"name": "Conferencia renovada",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	defer res.Body.Close()

	var body struct {
		Message string               `json:"message"`
		Event   events.EventResponse `json:"event"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "Evento actualizado correctamente", body.Message)
	assert.Equal(t, "Conferencia renovada", body.Event.Name)
	// Los campos omitidos conservan el valor almacenado.
	assert.Equal(t, "Auditorio A", body.Event.Location)
	assert.Equal(t, "18:00", body.Event.EndTime)
	assert.Equal(t, 100, body.Event.Capacity)
}

func TestUpdateForbiddenAndNotFound(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	admin := createTestUser(t, models.RoleAdmin)
	teacher := createTestUser(t, models.RoleTeacher)

	res := doRequest(t, ts, "PUT", "/api/eventos", teacher.ID, validPayload(teacher.ID))
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	res.Body.Close()

	payload := validPayload(teacher.ID)
	payload["id"] = 424242
	res = doRequest(t, ts, "PUT", "/api/eventos", admin.ID, payload)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	res.Body.Close()
}

func TestDeleteChecksRoleBeforeExistence(t *testing.T) {
	ts := setupTestServer()
	defer ts.Close()

	admin := createTestUser(t, models.RoleAdmin)
	teacher := createTestUser(t, models.RoleTeacher)
	student := createTestUser(t, models.RoleStudent)

	// Un no administrador recibe 403 aunque el evento no exista.
	for _, user := range []models.User{teacher, student} {
		res := doRequest(t, ts, "DELETE", "/api/eventos/424242", user.ID, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
		res.Body.Close()
	}

	// El administrador sí llega a la comprobación de existencia.
	res := doRequest(t, ts, "DELETE", "/api/eventos/424242", admin.ID, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	res.Body.Close()

	future := time.Now().AddDate(0, 1, 0)
	event := createTestEvent(t, teacher.ID, []string{events.AudienceGeneral}, nil, future, "10:00")

	res = doRequest(t, ts, "DELETE", "/api/eventos/"+strconv.Itoa(int(event.ID)), admin.ID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	var body map[string]string
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	res.Body.Close()
	assert.Equal(t, "Evento eliminado", body["details"])

	// La eliminación es definitiva, sin borrado lógico.
	var check models.AcademicEvent
	err := storage.DB.Unscoped().First(&check, event.ID).Error
	assert.Error(t, err)
}

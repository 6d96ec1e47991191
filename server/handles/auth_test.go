package handles_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/filedrive-org/drived/internal/bootstrap"
	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/filedrive-org/drived/server"
	"github.com/filedrive-org/drived/server/common"
	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	conf.Conf = conf.DefaultConfig(t.TempDir())
	conf.Conf.JwtSecret = "test-secret"
	conf.Conf.Backends.Secret = "test-internal"
	dB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	db.Init(dB)
	bootstrap.InitData()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, server.Init(r, conf.AllServices))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, common.Resp) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, utils.Json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp common.Resp
	require.NoError(t, utils.Json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func doInternal(t *testing.T, r *gin.Engine, path, secret string, body interface{}) common.Resp {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, utils.Json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-Internal-Token", secret)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp common.Resp
	require.NoError(t, utils.Json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRegisterLoginLogout(t *testing.T) {
	r := setupServer(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		gin.H{"username": "alice-http", "password": "secret123"})
	require.Equal(t, 200, resp.Code, resp.Message)

	// wrong password and unknown user answer the same way
	_, resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		gin.H{"username": "alice-http", "password": "nope"})
	assert.Equal(t, 401, resp.Code)
	_, resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		gin.H{"username": "nobody", "password": "nope"})
	assert.Equal(t, 401, resp.Code)

	_, resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		gin.H{"username": "alice-http", "password": "secret123"})
	require.Equal(t, 200, resp.Code, resp.Message)
	token := resp.Data.(map[string]interface{})["token"].(string)
	require.NotEmpty(t, token)

	_, resp = doJSON(t, r, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, 200, resp.Code)
	assert.Equal(t, "alice-http", resp.Data.(map[string]interface{})["username"])

	_, resp = doJSON(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, 200, resp.Code)

	// the JWT is still unexpired but its session row is gone
	_, resp = doJSON(t, r, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, 401, resp.Code)
}

func TestAdminOnlyRoutes(t *testing.T) {
	r := setupServer(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		gin.H{"username": "backy-http", "password": "secret123"})
	require.Equal(t, 200, resp.Code, resp.Message)
	_, resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		gin.H{"username": "backy-http", "password": "secret123"})
	require.Equal(t, 200, resp.Code)
	token := resp.Data.(map[string]interface{})["token"].(string)

	_, resp = doJSON(t, r, http.MethodGet, "/api/admin/users", token, nil)
	assert.Equal(t, 403, resp.Code)
	_, resp = doJSON(t, r, http.MethodGet, "/api/admin/audit", token, nil)
	assert.Equal(t, 403, resp.Code)
}

func TestQuotaInternalEndpoints(t *testing.T) {
	r := setupServer(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		gin.H{"username": "quota-http", "password": "secret123"})
	require.Equal(t, 200, resp.Code, resp.Message)
	_, resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		gin.H{"username": "quota-http", "password": "secret123"})
	require.Equal(t, 200, resp.Code)
	token := resp.Data.(map[string]interface{})["token"].(string)

	_, resp = doJSON(t, r, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, 200, resp.Code)
	userID := uint(resp.Data.(map[string]interface{})["id"].(float64))

	// no service token, wrong service token: both rejected
	resp = doInternal(t, r, "/api/quota/internal/reserve", "",
		gin.H{"user_id": userID, "bytes": 100})
	assert.Equal(t, 403, resp.Code)
	resp = doInternal(t, r, "/api/quota/internal/release", "bogus",
		gin.H{"user_id": userID, "bytes": 100})
	assert.Equal(t, 403, resp.Code)
	_, resp = doJSON(t, r, http.MethodGet, "/api/quota", token, nil)
	require.Equal(t, 200, resp.Code)
	assert.Equal(t, float64(0), resp.Data.(map[string]interface{})["used_bytes"])

	resp = doInternal(t, r, "/api/quota/internal/reserve", "test-internal",
		gin.H{"user_id": userID, "bytes": 100})
	require.Equal(t, 200, resp.Code, resp.Message)

	_, resp = doJSON(t, r, http.MethodGet, "/api/quota", token, nil)
	require.Equal(t, 200, resp.Code)
	assert.Equal(t, float64(100), resp.Data.(map[string]interface{})["used_bytes"])

	resp = doInternal(t, r, "/api/quota/internal/release", "test-internal",
		gin.H{"user_id": userID, "bytes": 40})
	require.Equal(t, 200, resp.Code)
	_, resp = doJSON(t, r, http.MethodGet, "/api/quota", token, nil)
	assert.Equal(t, float64(60), resp.Data.(map[string]interface{})["used_bytes"])
}

func TestInternalEndpointsClosedWithoutSecret(t *testing.T) {
	r := setupServer(t)
	conf.Conf.Backends.Secret = ""

	resp := doInternal(t, r, "/api/quota/internal/release", "",
		gin.H{"user_id": 1, "bytes": 1 << 30})
	assert.Equal(t, 403, resp.Code)
	resp = doInternal(t, r, "/api/audit/internal/record", "",
		gin.H{"action": "forged"})
	assert.Equal(t, 403, resp.Code)
}

func TestLoginDisabledUser(t *testing.T) {
	r := setupServer(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		gin.H{"username": "disabled-http", "password": "secret123"})
	require.Equal(t, 200, resp.Code, resp.Message)
	u, err := op.GetUserByName("disabled-http")
	require.NoError(t, err)
	u.Disabled = true
	require.NoError(t, op.UpdateUser(u))

	_, resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		gin.H{"username": "disabled-http", "password": "secret123"})
	assert.Equal(t, 403, resp.Code)
}

func TestLoginWithOtp(t *testing.T) {
	r := setupServer(t)

	_, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		gin.H{"username": "otp-http", "password": "secret123"})
	require.Equal(t, 200, resp.Code, resp.Message)
	key, err := totp.Generate(totp.GenerateOpts{Issuer: "drived", AccountName: "otp-http"})
	require.NoError(t, err)
	u, err := op.GetUserByName("otp-http")
	require.NoError(t, err)
	u.OtpSecret = key.Secret()
	require.NoError(t, op.UpdateUser(u))

	// wrong or missing code answers exactly like a wrong password
	_, resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		gin.H{"username": "otp-http", "password": "secret123", "otp_code": "000000"})
	assert.Equal(t, 401, resp.Code)
	assert.Equal(t, "username or password is incorrect", resp.Message)
	_, resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		gin.H{"username": "otp-http", "password": "secret123"})
	assert.Equal(t, 401, resp.Code)
	assert.Equal(t, "username or password is incorrect", resp.Message)

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)
	_, resp = doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		gin.H{"username": "otp-http", "password": "secret123", "otp_code": code})
	require.Equal(t, 200, resp.Code, resp.Message)
}

package modelgraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"datamodel-api/internal/logs"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&DataModelLayer{}, &DataModelObject{}, &Relationship{}, &logs.ActivityLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

// seedLayer, seedObject and seedRel write rows directly, bypassing service
// validation, so tests can build inconsistent graphs for the audit paths.
func seedLayer(t *testing.T, db *gorm.DB, name string, level int) DataModelLayer {
	t.Helper()
	layer := DataModelLayer{Name: name, Level: level}
	if err := db.Create(&layer).Error; err != nil {
		t.Fatalf("seed layer: %v", err)
	}
	return layer
}

func seedObject(t *testing.T, db *gorm.DB, layerID int64, name string) DataModelObject {
	t.Helper()
	object := DataModelObject{ModelID: layerID, Name: name, ObjectType: "entity"}
	if err := db.Create(&object).Error; err != nil {
		t.Fatalf("seed object: %v", err)
	}
	return object
}

func seedRel(t *testing.T, db *gorm.DB, layerID, sourceID, targetID int64) Relationship {
	t.Helper()
	rel := Relationship{
		ModelID:             layerID,
		SourceModelObjectID: sourceID,
		TargetModelObjectID: targetID,
		Type:                RelTypeForeignKey,
	}
	if err := db.Create(&rel).Error; err != nil {
		t.Fatalf("seed relationship: %v", err)
	}
	return rel
}

func setupModelRouter(svc ModelServiceAPI, logSvc *logs.LogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mc := &ModelController{ModelService: svc, LogService: logSvc}

	r.GET("/api/model/layers", mc.GetAllLayers)
	r.POST("/api/model/layers", mc.CreateLayer)
	r.PUT("/api/model/layers/:id", mc.UpdateLayer)
	r.DELETE("/api/model/layers/:id", mc.DeleteLayer)
	r.GET("/api/model/layers/:id/objects", mc.GetObjectsByLayer)
	r.GET("/api/model/layers/:id/relationships", mc.GetRelationshipsByLayer)
	r.POST("/api/model/objects", mc.CreateObject)
	r.PUT("/api/model/objects/:id", mc.UpdateObject)
	r.DELETE("/api/model/objects/:id", mc.DeleteObject)
	r.POST("/api/model/relationships", mc.CreateRelationship)
	r.PUT("/api/model/relationships/:id", mc.UpdateRelationship)
	r.DELETE("/api/model/relationships/:id", mc.DeleteRelationship)
	r.GET("/api/model/audit", mc.GetAudit)
	return r
}

func postJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func putJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getReq(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func deleteReq(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}

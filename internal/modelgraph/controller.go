package modelgraph

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"datamodel-api/internal/logs"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ModelController struct {
	ModelService ModelServiceAPI
	LogService   *logs.LogService
}

// ---- layers ----

func (mc *ModelController) GetAllLayers(c *gin.Context) {
	layers, err := mc.ModelService.GetAllLayers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Layers fetched successfully",
		"layers":  layers,
	})
}

func (mc *ModelController) CreateLayer(c *gin.Context) {
	var input LayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	layer, err := mc.ModelService.CreateLayer(input)
	if err != nil {
		respondError(c, err)
		return
	}

	mc.logWrite(c, "INFO", "CREATE_LAYER", fmt.Sprintf("Layer created : %s", layer.Name), "layer", layer.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Layer created successfully",
		"layer":   layer,
	})
}

func (mc *ModelController) UpdateLayer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input LayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	layer, err := mc.ModelService.UpdateLayer(id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	mc.logWrite(c, "INFO", "UPDATE_LAYER", fmt.Sprintf("Layer updated : %s", layer.Name), "layer", layer.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Layer updated successfully",
		"layer":   layer,
	})
}

func (mc *ModelController) DeleteLayer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := mc.ModelService.DeleteLayer(id); err != nil {
		respondError(c, err)
		return
	}

	mc.logWrite(c, "WARN", "DELETE_LAYER", fmt.Sprintf("Layer deleted : %d", id), "layer", id)

	c.JSON(http.StatusOK, gin.H{
		"message": "Layer deleted successfully",
	})
}

// ---- objects ----

func (mc *ModelController) GetObjectsByLayer(c *gin.Context) {
	layerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	objects, err := mc.ModelService.GetObjectsByLayer(layerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Objects fetched successfully",
		"objects": objects,
	})
}

func (mc *ModelController) CreateObject(c *gin.Context) {
	var input ObjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	object, err := mc.ModelService.CreateObject(input)
	if err != nil {
		respondError(c, err)
		return
	}

	mc.logWrite(c, "INFO", "CREATE_OBJECT", fmt.Sprintf("Object created : %s", object.Name), "object", object.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Object created successfully",
		"object":  object,
	})
}

func (mc *ModelController) UpdateObject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input ObjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	object, err := mc.ModelService.UpdateObject(id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	mc.logWrite(c, "INFO", "UPDATE_OBJECT", fmt.Sprintf("Object updated : %s", object.Name), "object", object.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Object updated successfully",
		"object":  object,
	})
}

func (mc *ModelController) DeleteObject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := mc.ModelService.DeleteObject(id); err != nil {
		respondError(c, err)
		return
	}

	mc.logWrite(c, "WARN", "DELETE_OBJECT", fmt.Sprintf("Object deleted : %d", id), "object", id)

	c.JSON(http.StatusOK, gin.H{
		"message": "Object and its relationships deleted successfully",
	})
}

// ---- relationships ----

func (mc *ModelController) GetRelationshipsByLayer(c *gin.Context) {
	layerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rels, err := mc.ModelService.GetRelationshipsByLayer(layerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Relationships fetched successfully",
		"relationships": rels,
	})
}

func (mc *ModelController) CreateRelationship(c *gin.Context) {
	var input RelationshipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rel, err := mc.ModelService.CreateRelationship(input)
	if err != nil {
		respondError(c, err)
		return
	}

	mc.logWrite(c, "INFO", "CREATE_RELATIONSHIP", fmt.Sprintf("Relationship created : %d -> %d", rel.SourceModelObjectID, rel.TargetModelObjectID), "relationship", rel.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Relationship created successfully",
		"relationship": rel,
	})
}

func (mc *ModelController) UpdateRelationship(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input RelationshipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rel, err := mc.ModelService.UpdateRelationship(id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	mc.logWrite(c, "INFO", "UPDATE_RELATIONSHIP", fmt.Sprintf("Relationship updated : %d", rel.ID), "relationship", rel.ID)

	c.JSON(http.StatusOK, gin.H{
		"message":      "Relationship updated successfully",
		"relationship": rel,
	})
}

func (mc *ModelController) DeleteRelationship(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := mc.ModelService.DeleteRelationship(id); err != nil {
		respondError(c, err)
		return
	}

	mc.logWrite(c, "WARN", "DELETE_RELATIONSHIP", fmt.Sprintf("Relationship deleted : %d", id), "relationship", id)

	c.JSON(http.StatusOK, gin.H{
		"message": "Relationship deleted successfully",
	})
}

// ---- audit ----

// GET /api/model/audit?layer=2
func (mc *ModelController) GetAudit(c *gin.Context) {
	var layerID *int64
	if raw := strings.TrimSpace(c.Query("layer")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "valid layer id is required"})
			return
		}
		layerID = &id
	}

	report, err := mc.ModelService.FindOrphans(layerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Audit report generated successfully",
		"report":  report,
	})
}

// ---- helpers ----

func respondError(c *gin.Context, err error) {
	if ie, ok := AsIntegrityError(err); ok {
		body := gin.H{
			"error": ie.Error(),
			"rule":  ie.Rule,
		}
		if ie.ObjectID != 0 {
			body["object_id"] = ie.ObjectID
		}
		if ie.LayerID != 0 {
			body["layer_id"] = ie.LayerID
		}
		if ie.RelationshipID != 0 {
			body["relationship_id"] = ie.RelationshipID
		}
		c.JSON(http.StatusConflict, body)
		return
	}
	if errors.Is(err, ErrObjectLayerImmutable) || errors.Is(err, ErrLayerNotEmpty) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid id is required"})
		return 0, false
	}
	return id, true
}

func (mc *ModelController) logWrite(c *gin.Context, level, action, message, entityType string, entityID int64) {
	var uid *uint
	if v, exists := c.Get("userID"); exists {
		if f, ok := v.(float64); ok {
			u := uint(f)
			uid = &u
		}
	}
	if err := mc.LogService.Log(level, "modelgraph", action, message, uid, entityType, &entityID, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}
}

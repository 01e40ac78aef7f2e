package v1

import (
	"fmt"
	"io"
	"net/http"

	"github.com/dailyledger/backend/internal/httputil"
	"github.com/dailyledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterImageRoutes registers the routes for receipt images with
// the RouterGroup that is passed.
func RegisterImageRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImageList)
	r.POST("", UploadImage)

	r.OPTIONS("/:id", OptionsImageDetail)
	r.GET("/:id", GetImage)
}

type ImageReference struct {
	models.DefaultModel
	Filename    string `json:"filename" example:"receipt.jpg"`
	ContentType string `json:"contentType" example:"image/jpeg"`
	URL         string `json:"url" example:"https://example.com/api/v1/images/d1b7d9d8-3e21-4f4d-9e4a-2f5a4a9a6d7e"` // Content URL of the image
}

type ImageResponse struct {
	Data  *ImageReference `json:"data"`                                           // Data for the uploaded image
	Error *string         `json:"error" example:"you must send a file to this endpoint"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Images
// @Success		204
// @Router			/v1/images [options]
func OptionsImageList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Images
// @Success		204
// @Param			id	path	string	true	"ID of the image"
// @Router			/v1/images/{id} [options]
func OptionsImageDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Upload image
// @Description	Stores a receipt image and returns its ID and content URL
// @Tags			Images
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImageResponse
// @Failure		400		{object}	ImageResponse
// @Failure		401		{object}	ImageResponse
// @Failure		500		{object}	ImageResponse
// @Param			file	formData	file	true	"The image file"
// @Router			/v1/images [post]
func UploadImage(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImageResponse{Error: &e})
		return
	}

	formFile, err := c.FormFile("file")
	if formFile == nil || err != nil {
		e := errNoFilePost.Error()
		c.JSON(http.StatusBadRequest, ImageResponse{Error: &e})
		return
	}

	f, err := formFile.Open()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ImageResponse{Error: &e})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, ImageResponse{Error: &e})
		return
	}

	image := models.Image{
		OwnerID:     userID,
		Filename:    formFile.Filename,
		ContentType: formFile.Header.Get("Content-Type"),
		Content:     content,
	}
	err = models.DB.Create(&image).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImageResponse{Error: &e})
		return
	}

	apiResource := newImageReference(c, image)
	c.JSON(http.StatusCreated, ImageResponse{Data: &apiResource})
}

func newImageReference(c *gin.Context, model models.Image) ImageReference {
	url := c.GetString(string(models.DBContextURL))

	return ImageReference{
		DefaultModel: model.DefaultModel,
		Filename:     model.Filename,
		ContentType:  model.ContentType,
		URL:          fmt.Sprintf("%s/v1/images/%s", url, model.ID),
	}
}

// @Summary		Get image
// @Description	Serves the content of a stored image
// @Tags			Images
// @Produce		octet-stream
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the image"
// @Router			/v1/images/{id} [get]
func GetImage(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var image models.Image
	err = models.DB.First(&image, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Data(http.StatusOK, contentType, image.Content)
}

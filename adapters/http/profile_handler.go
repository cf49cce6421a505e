package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/devhubio/profile-service/internal/application/usecase/profile"
	"github.com/devhubio/profile-service/pkg/apperror"
	"github.com/devhubio/profile-service/pkg/logger"
)

type ProfileHandler struct {
	getProfileUC   *profileUC.GetProfileUseCase
	updateInfoUC   *profileUC.UpdateInfoUseCase
	updateLinksUC  *profileUC.UpdateLinksUseCase
	updateMediaUC  *profileUC.UpdateMediaUseCase
	deleteResumeUC *profileUC.DeleteResumeUseCase
	logger         logger.Logger
}

func NewProfileHandler(
	getProfileUC *profileUC.GetProfileUseCase,
	updateInfoUC *profileUC.UpdateInfoUseCase,
	updateLinksUC *profileUC.UpdateLinksUseCase,
	updateMediaUC *profileUC.UpdateMediaUseCase,
	deleteResumeUC *profileUC.DeleteResumeUseCase,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:   getProfileUC,
		updateInfoUC:   updateInfoUC,
		updateLinksUC:  updateLinksUC,
		updateMediaUC:  updateMediaUC,
		deleteResumeUC: deleteResumeUC,
		logger:         log,
	}
}

func (h *ProfileHandler) GetFullProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.getProfileUC.Execute(c.Request.Context(), profileUC.GetProfileInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, "User data found", ToFullProfileDTO(output.User, output.Experiences))
}

func (h *ProfileHandler) UpdateUserInfo(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req UpdateUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for user info update", err))
		return
	}

	input := profileUC.UpdateInfoInput{
		UserID:   userID,
		Name:     req.Name,
		Headline: req.Headline,
		UserInfo: req.UserInfo,
	}
	output, err := h.updateInfoUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, "User data updated", ToUserDTO(output.User))
}

func (h *ProfileHandler) UpdateUserLinks(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req UpdateUserLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for links update", err))
		return
	}

	input := profileUC.UpdateLinksInput{
		UserID:        userID,
		GithubURL:     req.GithubURL,
		LinkedinURL:   req.LinkedinURL,
		LeetcodeURL:   req.LeetcodeURL,
		CodeForcesURL: req.CodeForcesURL,
		MediumURL:     req.MediumURL,
		PortfolioURL:  req.PortfolioURL,
	}
	output, err := h.updateLinksUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, "Platform Links updated", ToUserDTO(output.User))
}

func (h *ProfileHandler) uploadAsset(c *gin.Context, formField string, kind profileUC.AssetKind, successMsg string) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	fileHeader, err := c.FormFile(formField)
	if err != nil {
		c.Error(apperror.NewInvalidInput("No file found", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	input := profileUC.UpdateMediaInput{
		UserID:   userID,
		Kind:     kind,
		File:     file,
		Filename: fileHeader.Filename,
	}
	output, err := h.updateMediaUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, successMsg, ToUserDTO(output.User))
}

func (h *ProfileHandler) UploadResume(c *gin.Context) {
	h.uploadAsset(c, "resume", profileUC.AssetResume, "Updated Resume")
}

func (h *ProfileHandler) UpdateProfilePic(c *gin.Context) {
	h.uploadAsset(c, "profilePic", profileUC.AssetProfilePicture, "Updated Profile Picture")
}

func (h *ProfileHandler) UpdateBanner(c *gin.Context) {
	h.uploadAsset(c, "Banner", profileUC.AssetBanner, "Updated Banner")
}

func (h *ProfileHandler) DeleteResume(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.deleteResumeUC.Execute(c.Request.Context(), profileUC.DeleteResumeInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	respond(c, http.StatusOK, "Resume deleted successfully", ToUserDTO(output.User))
}

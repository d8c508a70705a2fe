package controllers

import (
	"StarBoard/middlewares"
	"StarBoard/services"

	"github.com/gin-gonic/gin"
)

var rewardService RewardServiceInterface

func SetRewardService(service RewardServiceInterface) {
	rewardService = service
}

// LogStars handles POST /actions/stars.
func LogStars(c *gin.Context) {
	var form struct {
		ChildID string `form:"childId"`
		TaskID  string `form:"taskId"`
		Stars   string `form:"stars"`
		Note    string `form:"note"`
	}
	if !bindForm(c, &form) {
		return
	}

	result, err := rewardService.LogStars(c.Request.Context(), middlewares.CurrentParent(c), services.LogStarsInput{
		ChildID: form.ChildID,
		TaskID:  form.TaskID,
		Stars:   optionalInt(form.Stars),
		Note:    form.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"streak":        result.Streak,
		"bonus_awarded": result.BonusAwarded,
		"achievements":  result.Unlocked,
	})
}

package service

import (
	"buget/database"
	"buget/models"
)

// ConnectedUserIDs returns the ids whose records are pooled for userID:
// the user itself plus every partner on an accepted bridge, regardless of
// which side sent the request. Pending bridges contribute nothing.
func ConnectedUserIDs(userID uint) ([]uint, error) {
	var bridges []models.UserBridge
	if err := database.DB.
		Where("accepted = ?", true).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Find(&bridges).Error; err != nil {
		return nil, err
	}

	ids := []uint{userID}
	for _, b := range bridges {
		if b.FromUserID == userID {
			ids = append(ids, b.ToUserID)
		} else {
			ids = append(ids, b.FromUserID)
		}
	}
	return ids, nil
}

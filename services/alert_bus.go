package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Anky1388/SFIRN/models"
	"github.com/Anky1388/SFIRN/utils"
	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitSurplusAlert notifies every matched NGO that a pickup is available:
// an Alert row per NGO account, a websocket broadcast, a push, and an
// email to the NGO's listed contact. Delivery failures are logged and
// swallowed; the meal log itself is already persisted and must not fail
// because a notification channel is down.
func EmitSurplusAlert(mealLog *models.MealLog, pickups []models.RedistributionLog) {
	if _alert.db == nil {
		return // not initialized
	}

	for _, p := range pickups {
		message := surplusAlertMessage(mealLog, p)

		var accounts []models.User
		_alert.db.Where("role = ? AND ngo_id = ?", models.RoleNGO, p.NGOID).Find(&accounts)

		alerts := surplusAlertsFor(mealLog.ID, message, accounts)
		userIDs := make([]uint, 0, len(alerts))
		for i := range alerts {
			_ = _alert.db.Create(&alerts[i]).Error
			userIDs = append(userIDs, alerts[i].UserID)

			if _alert.ps != nil {
				_alert.ps.PushToUser(alerts[i].UserID, "Surplus pickup available", message, map[string]string{
					"type": "surplus", "reference": p.Reference,
				})
			}
		}

		if _alert.rt != nil {
			_alert.rt.BroadcastToUsers(userIDs, map[string]any{
				"kind":    "alert.created",
				"message": message,
				"pickup":  p,
			})
		}

		var ngo models.NGO
		if err := _alert.db.First(&ngo, p.NGOID).Error; err == nil {
			if err := utils.SendPickupAlertEmail(ngo.Email, ngo.ContactName, p.Reference, p.QuantityKg, p.DistanceKm); err != nil {
				log.Printf("pickup alert email to %s failed: %v", ngo.Email, err)
			}
		}
	}
}

func surplusAlertMessage(mealLog *models.MealLog, p models.RedistributionLog) string {
	return fmt.Sprintf("%.1f kg surplus from %s %s available for pickup (ref %s)",
		p.QuantityKg, mealLog.Date.Format("2006-01-02"), mealLog.MealType, p.Reference)
}

// surplusAlertsFor builds one alert row per NGO account linked to the
// pickup's NGO.
func surplusAlertsFor(mealLogID uint, message string, accounts []models.User) []models.Alert {
	alerts := make([]models.Alert, 0, len(accounts))
	for _, u := range accounts {
		alerts = append(alerts, models.Alert{
			UserID:    u.ID,
			MealLogID: mealLogID,
			Type:      "surplus",
			Message:   message,
			CreatedAt: time.Now(),
		})
	}
	return alerts
}

// EmitAlert writes a plain informational alert for one user. Kept for the
// non-surplus paths (account events, forecast readiness).
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "New Alert", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// Package routes builds the client-side navigation paths the API hands back.
package routes

import "net/url"

const DashboardPath = "/dashboard"

func PaymentPath(chargerID string) string {
	return "/payment/" + url.PathEscape(chargerID)
}

func KioskPath(kioskID string) string {
	return "/kiosk/" + url.PathEscape(kioskID)
}

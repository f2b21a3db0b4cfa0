package controllers

import (
	"github.com/julienschmidt/httprouter"

	"github.com/cashpoint/cashpoint/auth"
)

// Router wires every route to its handler. Protected pages sit behind
// auth.RequireLogin.
func (atm *ATM) Router() *httprouter.Router {
	router := httprouter.New()

	router.GET("/", atm.Index)
	router.GET("/login", atm.LoginPage)
	router.POST("/login", atm.Login)
	router.GET("/logout", atm.Logout)

	router.GET("/dashboard", auth.RequireLogin(atm.Dashboard))
	router.GET("/statement", auth.RequireLogin(atm.Statement))
	router.GET("/withdraw", auth.RequireLogin(atm.WithdrawPage))
	router.POST("/withdraw", auth.RequireLogin(atm.Withdraw))
	router.GET("/deposit", auth.RequireLogin(atm.DepositPage))
	router.POST("/deposit", auth.RequireLogin(atm.Deposit))
	router.GET("/change-pin", auth.RequireLogin(atm.ChangePINPage))
	router.POST("/change-pin", auth.RequireLogin(atm.ChangePIN))

	router.GET("/healthz", atm.Healthz)
	router.GET("/api/stats", atm.Stats)

	return router
}

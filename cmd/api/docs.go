package main

// @title           Sri Devi Snacks Billing API
// @version         1.0
// @description     Billing and payment allocation API for a snacks distribution route: shops, products, per-shop pricing, stock, bills and payments.

// @contact.name   API Support

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /api/v1

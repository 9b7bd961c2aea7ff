package main

// @title           Weather Now API
// @version         1.0
// @description     Resolves a city name to coordinates and returns its current weather conditions.
// @contact.name    API Support
// @contact.email   support@example.com
// @host            localhost:8080
// @BasePath        /

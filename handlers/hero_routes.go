package handlers

import (
	"strconv"

	"deliwer-loyalty-system/services"
	"deliwer-loyalty-system/storage"

	"github.com/gofiber/fiber/v2"
)

// SetupHeroRoutes wires the public hero/gamification surface.
func SetupHeroRoutes(app *fiber.App, heroService *services.HeroService, challenges storage.ChallengeStore, rewards storage.RewardStore) {
	app.Get("/heroes/leaderboard", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "20"))
		heroes, err := heroService.Leaderboard(limit)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(heroes)
	})

	app.Get("/heroes/:id", func(c *fiber.Ctx) error {
		hero, badges, err := heroService.GetHero(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{
			"hero":   hero,
			"badges": badges,
		})
	})

	app.Post("/heroes/:id/challenges/:challengeID/complete", func(c *fiber.Ctx) error {
		hero, err := heroService.CompleteChallenge(c.Params("id"), c.Params("challengeID"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(hero)
	})

	app.Post("/heroes/:id/rewards/:rewardID/claim", func(c *fiber.Ctx) error {
		hero, err := heroService.ClaimReward(c.Params("id"), c.Params("rewardID"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(hero)
	})

	app.Get("/challenges", func(c *fiber.Ctx) error {
		list, err := challenges.ListActive()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	})

	app.Get("/rewards", func(c *fiber.Ctx) error {
		list, err := rewards.ListActive()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	})

	app.Get("/impact", func(c *fiber.Ctx) error {
		totals, err := heroService.CommunityImpact()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(totals)
	})
}

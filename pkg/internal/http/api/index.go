package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		users := api.Group("/users").Name("Users API")
		{
			users.Post("/signup", signupAccount)
			users.Post("/login", loginAccount)
			users.Post("/logout", logoutAccount)
			users.Get("/profile/:query", getAccountProfile)
			users.Post("/follow/:userId", toggleFollowAccount)
			users.Put("/update/:userId", updateAccountProfile)
			users.Get("/:userId/posts", listAccountPost)
		}

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/feed", getFeed)
			posts.Post("/", createPost)
			posts.Get("/:postId", getPost)
			posts.Delete("/:postId", deletePost)
			posts.Post("/:postId/like", toggleLikePost)
			posts.Post("/:postId/replies", createPostReply)
		}
	}
}

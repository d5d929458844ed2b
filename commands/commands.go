package commands

import "github.com/bwmarrin/discordgo"

// GenerateCommands returns the slash command definitions registered per
// guild.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "hunt",
			Description: "Manage puzzle hunts",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Declare a new hunt and set up its category and nexus",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Hunt name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "url",
							Description: "Hunt website URL",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End a hunt; its nexus stops refreshing",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "hunt_id",
							Description: "Hunt to end",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "puzzle",
			Description: "Manage the puzzle tracked by this channel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Create a puzzle channel with a spreadsheet",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Puzzle name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Set the puzzle's status text",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "status",
							Description: "Free-text status, e.g. extraction",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "solve",
					Description: "Record the puzzle's solution",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "solution",
							Description: "The answer",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unsolve",
					Description: "Clear a mistakenly recorded solution",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "note",
					Description: "Add a note to the puzzle",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "text",
							Description: "Note text",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "priority",
					Description: "Set the puzzle's priority",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "level",
							Description: "Priority label",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "high", Value: "high"},
								{Name: "normal", Value: "normal"},
								{Name: "low", Value: "low"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "type",
					Description: "Set the puzzle's type label",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "type",
							Description: "e.g. crossword, meta",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "link",
					Description: "Correct the puzzle's hunt page URL",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "url",
							Description: "Puzzle page URL",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "info",
					Description: "Show everything tracked for this puzzle",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Delete the puzzle's tracked data",
				},
			},
		},
		{
			Name:        "settings",
			Description: "Guild settings",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show the guild's settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Set one settings field",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "field",
							Description: "Field to set",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "bot_channel", Value: "bot_channel"},
								{Name: "bot_emoji", Value: "bot_emoji"},
								{Name: "use_voice_channels", Value: "use_voice_channels"},
								{Name: "drive_parent_id", Value: "drive_parent_id"},
								{Name: "drive_resources_id", Value: "drive_resources_id"},
								{Name: "drive_starter_sheet_id", Value: "drive_starter_sheet_id"},
								{Name: "archive_category_id", Value: "archive_category_id"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "value",
							Description: "New value",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "info",
			Description: "Bot and system statistics",
		},
		{
			Name:        "ping",
			Description: "Current latency of the bot",
		},
		{
			Name:        "uptime",
			Description: "How long the bot has been running",
		},
	}
}

package resource

import "github.com/galeria/admin-api/internal/client/apiclient"

type ActivityFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Site        string `json:"site"`
}

type Activities struct {
	*Resource[Activity, ActivityFields]
}

func NewActivities(client *apiclient.Client) *Activities {
	return &Activities{New[Activity](client, Endpoint[ActivityFields]{
		Path:   "/activities",
		Single: "activity",
		Plural: "activities",
	})}
}

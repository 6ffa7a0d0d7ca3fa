package githubapi

import (
	"fmt"
	"strconv"

	gh "github.com/google/go-github/v57/github"

	"github.com/mayen007/gitfolio/internal/model"
)

// The REST repo object carries no language color; GitHub only exposes
// colors through GraphQL.
const defaultLanguageColor = "#000000"

// profileFromREST maps a REST user object onto the Profile view model.
func profileFromREST(u *gh.User) model.Profile {
	return model.Profile{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		AvatarURL:   u.GetAvatarURL(),
		Location:    u.GetLocation(),
		Email:       u.GetEmail(),
		Blog:        u.GetBlog(),
		PublicRepos: u.GetPublicRepos(),
		PublicGists: u.GetPublicGists(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		CreatedAt:   u.GetCreatedAt().Time,
	}
}

// repoFromREST maps a REST repo object onto the normalized Repository.
func repoFromREST(r *gh.Repository, owner string) model.Repository {
	repo := model.Repository{
		ID:          strconv.FormatInt(r.GetID(), 10),
		Name:        r.GetName(),
		Description: r.GetDescription(),
		URL:         r.GetHTMLURL(),
		HomepageURL: r.GetHomepage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		CreatedAt:   r.GetCreatedAt().Time,
		UpdatedAt:   r.GetUpdatedAt().Time,
		ImageURL:    fmt.Sprintf("https://opengraph.githubassets.com/1/%s/%s", owner, r.GetName()),
		Topics:      r.Topics,
		Fork:        r.GetFork(),
	}

	if lang := r.GetLanguage(); lang != "" {
		repo.PrimaryLanguage = &model.Language{Name: lang, Color: defaultLanguageColor}
		repo.Languages = []model.Language{{Name: lang, Color: defaultLanguageColor}}
	}

	return repo.Normalized()
}

// repoFromPinnedNode maps a GraphQL pinned item onto the normalized
// Repository.
func repoFromPinnedNode(n pinnedNode) model.Repository {
	repo := model.Repository{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		URL:         n.URL,
		HomepageURL: n.HomepageURL,
		Stars:       n.StargazerCount,
		Forks:       n.ForkCount,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		ImageURL:    n.OpenGraphImageURL,
	}

	if n.PrimaryLanguage != nil {
		repo.PrimaryLanguage = &model.Language{
			Name:  n.PrimaryLanguage.Name,
			Color: n.PrimaryLanguage.Color,
		}
	}
	for _, l := range n.Languages.Nodes {
		repo.Languages = append(repo.Languages, model.Language{Name: l.Name, Color: l.Color})
	}
	for _, t := range n.RepositoryTopics.Nodes {
		repo.Topics = append(repo.Topics, t.Topic.Name)
	}

	return repo.Normalized()
}

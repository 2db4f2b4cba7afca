package validation

const (
	WorkspaceNameMinLength        = 2
	WorkspaceNameMaxLength        = 100
	WorkspaceDescriptionMaxLength = 500
)

type WorkspaceInput struct {
	Name        string
	Description *string
}

func Workspace(name string, description *string) (WorkspaceInput, error) {
	n, err := requiredText("name", "Workspace name", name, WorkspaceNameMinLength, WorkspaceNameMaxLength)
	if err != nil {
		return WorkspaceInput{}, err
	}

	d, err := optionalText("description", "Description", description, WorkspaceDescriptionMaxLength)
	if err != nil {
		return WorkspaceInput{}, err
	}

	return WorkspaceInput{Name: n, Description: d}, nil
}

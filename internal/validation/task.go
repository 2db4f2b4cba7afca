package validation

const (
	TaskTitleMinLength       = 3
	TaskTitleMaxLength       = 200
	TaskDescriptionMaxLength = 1000
)

type TaskInput struct {
	Title       string
	Description *string
}

func Task(title string, description *string) (TaskInput, error) {
	t, err := requiredText("title", "Task title", title, TaskTitleMinLength, TaskTitleMaxLength)
	if err != nil {
		return TaskInput{}, err
	}

	d, err := optionalText("description", "Description", description, TaskDescriptionMaxLength)
	if err != nil {
		return TaskInput{}, err
	}

	return TaskInput{Title: t, Description: d}, nil
}

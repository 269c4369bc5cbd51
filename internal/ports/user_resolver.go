package ports

type UserResolver interface {
	CurrentUsername() (string, error)
}

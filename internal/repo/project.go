package repo

import (
	"github.com/avdeenko/todokeep/internal/codec"
	"github.com/avdeenko/todokeep/internal/kv"
	"github.com/avdeenko/todokeep/internal/model"
)

const projectKeyPrefix = "proj-"

type ProjectRepo struct {
	store kv.Store
}

func NewProjectRepo(store kv.Store) *ProjectRepo {
	return &ProjectRepo{
		store: store,
	}
}

func (r *ProjectRepo) LoadAll() ([]model.Project, error) {
	keys, err := r.store.Keys(projectKeyPrefix)
	if err != nil {
		return nil, err
	}

	projects := make([]model.Project, 0, len(keys))
	for _, key := range keys {
		data, err := r.store.Get(key)
		if err != nil {
			return nil, err
		}
		p, err := codec.DecodeProject(data)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *ProjectRepo) Save(p model.Project) error {
	data, err := codec.EncodeProject(p)
	if err != nil {
		return err
	}
	return r.store.Set(projectKeyPrefix+p.Name, data)
}

func (r *ProjectRepo) Delete(name string) error {
	return r.store.Delete(projectKeyPrefix + name)
}

func (r *ProjectRepo) Wipe() error {
	keys, err := r.store.Keys(projectKeyPrefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := r.store.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

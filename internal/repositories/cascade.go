package repositories

import (
	"gorm.io/gorm"

	"cityguide/internal/models/db_models"
)

// CascadeResult counts the rows removed by one cascading delete, the parent
// row included.
type CascadeResult struct {
	Cities     int64
	Categories int64
	POIs       int64
	Users      int64
	Ratings    int64
}

// The functions below are the whole ownership graph:
//
//	City     -> POIs, Users
//	Category -> POIs
//	POI      -> Ratings
//	User     -> Ratings
//
// Each runs on the transaction it is given and deletes children before
// parents so foreign keys are never left dangling mid-transaction.

func deleteRatingsWhere(tx *gorm.DB, res *CascadeResult, column string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	result := tx.Where(column+" IN ?", ids).Delete(&db_models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	res.Ratings += result.RowsAffected
	return nil
}

func deletePOIs(tx *gorm.DB, res *CascadeResult, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := deleteRatingsWhere(tx, res, "poi_id", ids); err != nil {
		return err
	}
	result := tx.Where("id IN ?", ids).Delete(&db_models.POI{})
	if result.Error != nil {
		return result.Error
	}
	res.POIs += result.RowsAffected
	return nil
}

func deleteUsers(tx *gorm.DB, res *CascadeResult, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := deleteRatingsWhere(tx, res, "user_id", ids); err != nil {
		return err
	}
	result := tx.Where("id IN ?", ids).Delete(&db_models.User{})
	if result.Error != nil {
		return result.Error
	}
	res.Users += result.RowsAffected
	return nil
}

func poiIDsWhere(tx *gorm.DB, column string, id uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&db_models.POI{}).Where(column+" = ?", id).Pluck("id", &ids).Error
	return ids, err
}

// DeletePOICascade deletes a POI and its ratings.
func DeletePOICascade(tx *gorm.DB, id uint) (CascadeResult, error) {
	var res CascadeResult
	err := deletePOIs(tx, &res, []uint{id})
	return res, err
}

// DeleteUserCascade deletes a user and its ratings.
func DeleteUserCascade(tx *gorm.DB, id uint) (CascadeResult, error) {
	var res CascadeResult
	err := deleteUsers(tx, &res, []uint{id})
	return res, err
}

// DeleteCategoryCascade deletes a category, every POI filed under it and
// those POIs' ratings.
func DeleteCategoryCascade(tx *gorm.DB, id uint) (CascadeResult, error) {
	var res CascadeResult

	poiIDs, err := poiIDsWhere(tx, "category_id", id)
	if err != nil {
		return res, err
	}
	if err := deletePOIs(tx, &res, poiIDs); err != nil {
		return res, err
	}

	result := tx.Delete(&db_models.Category{}, id)
	if result.Error != nil {
		return res, result.Error
	}
	res.Categories = result.RowsAffected
	return res, nil
}

// DeleteCityCascade deletes a city, its POIs, the users living in it and all
// ratings attached to either.
func DeleteCityCascade(tx *gorm.DB, id uint) (CascadeResult, error) {
	var res CascadeResult

	poiIDs, err := poiIDsWhere(tx, "city_id", id)
	if err != nil {
		return res, err
	}
	if err := deletePOIs(tx, &res, poiIDs); err != nil {
		return res, err
	}

	var userIDs []uint
	if err := tx.Model(&db_models.User{}).Where("city_id = ?", id).Pluck("id", &userIDs).Error; err != nil {
		return res, err
	}
	if err := deleteUsers(tx, &res, userIDs); err != nil {
		return res, err
	}

	result := tx.Delete(&db_models.City{}, id)
	if result.Error != nil {
		return res, result.Error
	}
	res.Cities = result.RowsAffected
	return res, nil
}

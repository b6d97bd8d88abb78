/*
 * eeqdata.go, part of godftd4.
 *
 *
 * Copyright 2025 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goDFTD4 is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package charges

//maxZ is the highest atomic number with EEQ parameters (Rn).
const maxZ = 86

//Electronegativities of the EEQ charge model, indexed by atomic number.
var chi = [maxZ + 1]float64{0,
	1.21600000, 1.44000000, 0.87440000, 1.03960000, 1.17120000, 1.31400000, //H-C
	1.45120000, 1.56320000, 1.71440000, 1.86000000, 0.86040000, 0.96680000, //N-Mg
	1.05080000, 1.13200000, 1.21320000, 1.32240000, 1.48480000, 1.58000000, //Al-Ar
	0.82960000, 0.88000000, 0.98080000, 1.03120000, 1.05640000, 1.06480000, //K-Cr
	1.03400000, 1.11240000, 1.12640000, 1.13480000, 1.13200000, 1.06200000, //Mn-Zn
	1.10680000, 1.16280000, 1.21040000, 1.31400000, 1.42880000, 1.44000000, //Ga-Kr
	0.82960000, 0.86600000, 0.94160000, 0.97240000, 1.04800000, 1.20480000, //Rb-Mo
	1.13200000, 1.21600000, 1.23840000, 1.21600000, 1.14040000, 1.07320000, //Tc-Cd
	1.09840000, 1.14880000, 1.17400000, 1.18800000, 1.34480000, 1.32800000, //In-Xe
	0.82120000, 0.84920000, 0.90800000, 0.91360000, 0.91640000, 0.91920000, //Cs-Nd
	0.92200000, 0.92760000, 0.93040000, 0.93600000, 0.93880000, 0.94160000, //Pm-Dy
	0.94440000, 0.94720000, 0.95000000, 0.95280000, 0.95560000, 0.96400000, //Ho-Hf
	1.02000000, 1.26080000, 1.13200000, 1.21600000, 1.21600000, 1.23840000, //Ta-Pt
	1.31120000, 1.16000000, 1.05360000, 1.25240000, 1.16560000, 1.16000000, //Au-Po
	1.21600000, 1.21600000, //At-Rn
}

//Chemical hardnesses of the EEQ charge model. These enter the diagonal
//of the Coulomb matrix together with the charge-width term.
var eta = [maxZ + 1]float64{0,
	0.53629644, 0.76101695, 0.38726444, 0.42850366, 0.46974543, 0.51097706, //H-C
	0.55219096, 0.59345932, 0.63465675, 0.67595804, 0.38982052, 0.41078638, //N-Mg
	0.43174289, 0.45269823, 0.47367007, 0.49462363, 0.51557835, 0.53654134, //Al-Ar
	0.38552734, 0.40138122, 0.40503661, 0.40869824, 0.41235520, 0.41600750, //K-Cr
	0.41966984, 0.42332819, 0.42699128, 0.43064431, 0.43429738, 0.43796283, //Mn-Zn
	0.45381499, 0.46965790, 0.48617992, 0.50136775, 0.51722888, 0.53305854, //Ga-Kr
	0.37792539, 0.39324662, 0.39678105, 0.40031655, 0.40385261, 0.40738627, //Rb-Mo
	0.41092307, 0.41445936, 0.41799310, 0.42152806, 0.42506509, 0.42859969, //Tc-Cd
	0.44392390, 0.45924336, 0.47456215, 0.48988296, 0.50520404, 0.52052889, //In-Xe
	0.37013452, 0.38413549, 0.38767267, 0.38911000, 0.38987000, 0.39063000, //Cs-Nd
	0.39139000, 0.39215000, 0.39291000, 0.39367000, 0.39443000, 0.39519000, //Pm-Dy
	0.39595000, 0.39671000, 0.39747000, 0.39823000, 0.39899000, 0.40531655, //Ho-Hf
	0.40885261, 0.41238627, 0.41592307, 0.41945936, 0.42299310, 0.42652806, //Ta-Pt
	0.43006509, 0.43359969, 0.44892390, 0.46424336, 0.47956215, 0.49488296, //Au-Po
	0.51020404, 0.52552888, //At-Rn
}

//Coordination-number scalings of the EEQ electronegativities.
var kcn = [maxZ + 1]float64{0,
	0.04750000, 0.05750000, 0.03225000, 0.03962500, 0.04550000, 0.05187500, //H-C
	0.05800000, 0.06300000, 0.06975000, 0.07625000, 0.03162500, 0.03637500, //N-Mg
	0.04012500, 0.04375000, 0.04737500, 0.05225000, 0.05950000, 0.06375000, //Al-Ar
	0.03025000, 0.03250000, 0.03700000, 0.03925000, 0.04037500, 0.04075000, //K-Cr
	0.03937500, 0.04287500, 0.04350000, 0.04387500, 0.04375000, 0.04062500, //Mn-Zn
	0.04262500, 0.04512500, 0.04725000, 0.05187500, 0.05700000, 0.05750000, //Ga-Kr
	0.03025000, 0.03187500, 0.03525000, 0.03662500, 0.04000000, 0.04700000, //Rb-Mo
	0.04375000, 0.04750000, 0.04850000, 0.04750000, 0.04412500, 0.04112500, //Tc-Cd
	0.04225000, 0.04450000, 0.04562500, 0.04625000, 0.05325000, 0.05250000, //In-Xe
	0.02987500, 0.03112500, 0.03375000, 0.03400000, 0.03412500, 0.03425000, //Cs-Nd
	0.03437500, 0.03462500, 0.03475000, 0.03500000, 0.03512500, 0.03525000, //Pm-Dy
	0.03537500, 0.03550000, 0.03562500, 0.03575000, 0.03587500, 0.03625000, //Ho-Hf
	0.03875000, 0.04950000, 0.04375000, 0.04750000, 0.04750000, 0.04850000, //Ta-Pt
	0.05175000, 0.04500000, 0.04025000, 0.04912500, 0.04525000, 0.04500000, //Au-Po
	0.04750000, 0.04750000, //At-Rn
}

//Charge-distribution widths of the EEQ model, in Bohr. The pairwise
//Coulomb interaction is damped by erf(r/sqrt(rad_i^2+rad_j^2)).
var rad = [maxZ + 1]float64{0,
	1.34345570, 1.53746757, 2.74311275, 2.31351504, 2.07792920, 1.93934929, //H-C
	1.88391733, 1.77305341, 1.78691140, 1.82848537, 3.04798854, 2.82626069, //N-Mg
	2.64610681, 2.50752691, 2.43823695, 2.32737303, 2.27194107, 2.23036710, //Al-Ar
	3.61616616, 3.26971639, 2.95098260, 2.78468672, 2.75697074, 2.59067485, //K-Cr
	2.54910088, 2.50752691, 2.43823695, 2.42437897, 2.45209495, 2.53524289, //Mn-Zn
	2.61839083, 2.57681686, 2.57681686, 2.50752691, 2.47981093, 2.52138490, //Ga-Kr
	3.81017802, 3.46372826, 3.15885246, 3.03413055, 2.93712462, 2.81240270, //Rb-Mo
	2.67382279, 2.63224883, 2.63224883, 2.56295887, 2.67382279, 2.78468672, //Tc-Cd
	2.86783467, 2.84011868, 2.84011868, 2.78468672, 2.74311275, 2.71539676, //In-Xe
	4.11505381, 3.61616616, 3.39443830, 3.15885246, 3.33900634, 3.31129036, //Cs-Nd
	3.29743237, 3.28357438, 3.22814242, 3.24200041, 3.22814242, 3.21428443, //Pm-Dy
	3.20042644, 3.18656845, 3.17271046, 3.25585840, 3.14499448, 3.00641457, //Ho-Hf
	2.92326662, 2.79854471, 2.71539676, 2.68768078, 2.59067485, 2.60453284, //Ta-Pt
	2.61839083, 2.74311275, 2.89555065, 2.89555065, 2.99255658, 2.90940864, //Au-Po
	2.93712462, 2.86783467, //At-Rn
}
